package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string       { return "logout" }
func (c *LogoutCmd) Aliases() []string  { return nil }
func (c *LogoutCmd) Synopsis() string   { return "End the session" }
func (c *LogoutCmd) Usage() string      { return "taskboard logout [common flags]" }
func (c *LogoutCmd) NeedsBackend() bool { return true }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Fail-safe: the stored session is dropped even when the backend call
	// fails, so logout always ends logged out locally.
	err := svc.Logout(ctx)
	if cfg.HasSession() {
		if rmErr := cfg.RemoveSession(); rmErr != nil {
			fmt.Fprintf(errOut, "error: failed to remove session: %v\n", rmErr)
			return exitcode.AuthError
		}
	}
	if err != nil {
		fmt.Fprintf(errOut, "warning: logout request failed: %v\n", err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
