// Package controller holds the client-side state machines behind the board:
// session phase, visible task collection, dashboard summary, and the lookup
// result. Controllers are plain state with explicit transitions; the TUI
// wires network calls around them.
package controller

// Filter selects which task subset the backend is asked for. The backend
// performs the filtering; the client never narrows a full list locally.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterOpen Filter = "open"
	FilterDone Filter = "done"
)

// Done reports the boolean status value a non-all filter requests.
// Only meaningful for FilterOpen and FilterDone.
func (f Filter) Done() bool {
	return f == FilterDone
}

// Matches reports whether a task with the given status belongs under the
// filter. FilterAll matches everything.
func (f Filter) Matches(done bool) bool {
	switch f {
	case FilterOpen:
		return !done
	case FilterDone:
		return done
	default:
		return true
	}
}

// Label renders the filter for display.
func (f Filter) Label() string {
	switch f {
	case FilterOpen:
		return "Open"
	case FilterDone:
		return "Done"
	default:
		return "All Tasks"
	}
}
