package controller

import (
	"strings"

	"taskboard/internal/service"
)

// Lookup owns the exact-title search result. HasSearched distinguishes
// "never searched" from "searched, zero results".
type Lookup struct {
	Result      string
	HasSearched bool
}

// Begin validates the search title. Returns false for an empty trimmed
// title, in which case nothing is searched and HasSearched is untouched.
func (l *Lookup) Begin(title string) (string, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}
	l.HasSearched = true
	return title, true
}

// CommitFound formats the result for a found task, noting when its status
// falls outside the active filter.
func (l *Lookup) CommitFound(task service.Task, active Filter) {
	note := ""
	if !active.Matches(task.Status) {
		note = " (not in current filter)"
	}
	l.Result = "Found: " + task.Title + " (" + service.StatusLabel(task.Status) + ")" + note
}

// CommitNotFound clears the result silently; a missing title is an expected
// outcome, not an error.
func (l *Lookup) CommitNotFound() {
	l.Result = ""
}

// CommitError surfaces any other failure as the result message.
func (l *Lookup) CommitError(err error) {
	l.Result = "Error: " + err.Error()
}

// Clear resets the lookup to its never-searched state.
func (l *Lookup) Clear() {
	l.Result = ""
	l.HasSearched = false
}
