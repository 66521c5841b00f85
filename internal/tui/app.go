// Package tui implements the interactive task board, a Bubble Tea program
// over the controller state machines.
package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/service"
)

// Run starts the interactive board and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, cfg *config.Config, svc service.Service) error {
	// The board owns the terminal, so logs go to a file unless --debug
	// already routed them to stderr.
	if !cfg.Debug {
		if err := cfg.EnsureDir(); err != nil {
			return fmt.Errorf("preparing config dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logging.Reset()
		logging.Init(logging.Options{Level: cfg.LogLevel, Output: f})
	}

	applyColorProfilePreference()

	p := tea.NewProgram(
		newBoardModel(ctx, cfg, svc),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
