package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/controller"
	"taskboard/internal/service"
)

func (m boardModel) View() string {
	switch m.board.Session.Phase {
	case controller.Bootstrapping:
		return styleMuted.Render("checking stored session...") + "\n"
	case controller.Anonymous:
		return m.viewAuth()
	default:
		return m.viewBoard()
	}
}

func (m boardModel) viewAuth() string {
	var b strings.Builder

	title := "Log in"
	if m.signupMode {
		title = "Create account"
	}
	b.WriteString(styleTitle.Render("Task Console") + "  " + styleMuted.Render(title) + "\n\n")

	b.WriteString("  " + m.authInputs[authFieldUsername].View() + "\n")
	if m.signupMode {
		b.WriteString("  " + m.authInputs[authFieldEmail].View() + "\n")
	}
	b.WriteString("  " + m.authInputs[authFieldPassword].View() + "\n")

	if m.signupMode {
		b.WriteString("\n" + m.viewStrength())
	}

	if msg := m.board.Session.FormError; msg != "" {
		b.WriteString("\n  " + styleError.Render(msg) + "\n")
	}

	hints := "tab: next field • ctrl+s: switch to sign up • enter: submit • ctrl+c: quit"
	if m.signupMode {
		hints = "tab: next field • ctrl+s: switch to log in • enter: submit • ctrl+c: quit"
	}
	b.WriteString("\n" + styleStatusBar.Render(hints) + "\n")

	return stylePanel.Render(b.String()) + "\n"
}

// viewStrength renders the live strength meter and checklist. Recomputed on
// every password keystroke.
func (m boardModel) viewStrength() string {
	var b strings.Builder

	b.WriteString("  " + strengthMeter(m.strength.Percent, 24) + " " + m.strength.Label + "\n")
	for _, c := range m.strength.Checks {
		mark := styleMeterEmpty.Render("✗")
		if c.Satisfied {
			mark = styleMeterFill.Render("✓")
		}
		b.WriteString("   " + mark + " " + styleMuted.Render(c.Description) + "\n")
	}
	return b.String()
}

func strengthMeter(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return styleMeterFill.Render(strings.Repeat("█", filled)) +
		styleMeterEmpty.Render(strings.Repeat("░", width-filled))
}

func (m boardModel) viewBoard() string {
	var b strings.Builder

	user := ""
	if u := m.board.Session.User; u != nil {
		user = u.Username
	}
	b.WriteString(styleTitle.Render("To-do Board") + "  " + styleMuted.Render(user) + "\n\n")

	b.WriteString(m.viewOverview() + "\n")
	b.WriteString(m.viewTabs() + "\n\n")
	b.WriteString(m.viewTasks())
	b.WriteString("\n" + m.viewInputs())
	b.WriteString("\n" + styleStatusBar.Render(m.board.Tasks.Status) + "\n")
	b.WriteString(styleStatusBar.Render(m.boardHints()) + "\n")

	return b.String()
}

func (m boardModel) viewOverview() string {
	total, open, done := m.board.Tasks.Counts()
	return styleMuted.Render(fmt.Sprintf("Total %d • Open %d • Done %d", total, open, done))
}

func (m boardModel) viewTabs() string {
	tabs := make([]string, 0, 3)
	for _, f := range []controller.Filter{controller.FilterAll, controller.FilterOpen, controller.FilterDone} {
		style := styleTab
		if f == m.board.Tasks.Filter {
			style = styleTabActive
		}
		tabs = append(tabs, style.Render(f.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs[0], "  ", tabs[1], "  ", tabs[2])
}

func (m boardModel) viewTasks() string {
	tasks := m.board.Tasks.Tasks
	if len(tasks) == 0 {
		return styleMuted.Render("  No tasks to show.") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		cursor := "  "
		line := taskLine(t)
		if m.focus == focusTasks && i == m.cursor {
			cursor = styleCursor.Render("> ")
			line = styleCursor.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func taskLine(t service.Task) string {
	box := "[ ]"
	pill := stylePillOpen.Render(service.StatusLabel(false))
	if t.Status {
		box = "[x]"
		pill = stylePillDone.Render(service.StatusLabel(true))
	}
	return fmt.Sprintf("%s %s  %s", box, t.Title, pill)
}

func (m boardModel) viewInputs() string {
	var b strings.Builder

	b.WriteString("  add:  " + m.addInput.View() + "\n")
	b.WriteString("  find: " + m.searchInput.View() + "\n")

	switch {
	case m.board.Lookup.Result != "":
		b.WriteString("  " + m.board.Lookup.Result + "\n")
	case m.board.Lookup.HasSearched:
		b.WriteString("  " + styleMuted.Render("No matching task.") + "\n")
	}
	return b.String()
}

func (m boardModel) boardHints() string {
	switch m.focus {
	case focusAdd, focusSearch:
		return "enter: submit • tab: next pane • ctrl+l: log out • ctrl+c: quit"
	default:
		return "j/k: move • enter: toggle • 1/2/3: filter • tab: next pane • ctrl+l: log out • q: quit"
	}
}
