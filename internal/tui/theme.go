package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The board must remain readable on both light and dark terminal
// backgrounds, so every color is a lipgloss.AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted    = ac("240", "245")
	colorAccent   = ac("27", "75")   // blue
	colorDanger   = ac("160", "203") // red
	colorGood     = ac("28", "78")   // green
	colorSelected = ac("232", "255")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)

	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)

	styleError = lipgloss.NewStyle().Foreground(colorDanger)

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Underline(true)

	styleTab = lipgloss.NewStyle().Foreground(colorMuted)

	stylePillDone = lipgloss.NewStyle().Foreground(colorGood)

	stylePillOpen = lipgloss.NewStyle().Foreground(colorAccent)

	styleCursor = lipgloss.NewStyle().Bold(true).Foreground(colorSelected)

	styleStatusBar = lipgloss.NewStyle().Foreground(colorMuted)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleMeterFill  = lipgloss.NewStyle().Foreground(colorGood)
	styleMeterEmpty = lipgloss.NewStyle().Foreground(colorMuted)
)

// applyColorProfilePreference sets Lip Gloss's color profile for the board.
//
// Only NO_COLOR is honored explicitly; otherwise the terminal's detected
// capabilities are used.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
