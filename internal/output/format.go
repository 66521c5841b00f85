// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskboard/internal/password"
	"taskboard/internal/service"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {TITLE}\n" with a blank box for open tasks.
func FormatTask(w io.Writer, num int, task service.Task) {
	box := " "
	if task.Status {
		box = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, box, normalizeTitle(task.Title))
}

// FormatDashboard formats the aggregate summary.
func FormatDashboard(w io.Writer, d service.Dashboard) {
	fmt.Fprintf(w, "%s (%s)\n", d.Username, d.Role)
	fmt.Fprintf(w, "  total:     %d\n", d.TotalTasks)
	fmt.Fprintf(w, "  open:      %d\n", d.OpenTasks)
	fmt.Fprintf(w, "  completed: %d\n", d.CompletedTasks)
}

// FormatUser formats the current identity.
func FormatUser(w io.Writer, u service.User) {
	fmt.Fprintf(w, "%s <%s> (%s)\n", u.Username, u.Email, u.Role)
}

// FormatStrength formats the password policy check list, marking the checks
// a candidate password fails.
func FormatStrength(w io.Writer, res password.Result) {
	fmt.Fprintf(w, "password strength: %s (%d%%)\n", res.Label, res.Percent)
	for _, c := range res.Checks {
		mark := "x"
		if !c.Satisfied {
			mark = " "
		}
		fmt.Fprintf(w, "  [%s] %s\n", mark, c.Description)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
