package controller

import (
	"taskboard/internal/backend/todoapi"
	"taskboard/internal/service"
)

// StatusExpired is shown when the backend rejects a session mid-flight.
const StatusExpired = "Session expired. Please log in again."

// Board bundles the three controllers behind the screen and centralizes the
// one cross-cutting rule: an unauthorized response on any authenticated-only
// call forces the session back to Anonymous and clears every dependent view.
type Board struct {
	Session Session
	Tasks   TaskView
	Lookup  Lookup
}

// NewBoard returns a board in the bootstrapping phase.
func NewBoard() Board {
	return Board{
		Session: NewSession(),
		Tasks:   NewTaskView(),
	}
}

// ForceExpiry transitions to Anonymous and clears all dependent state.
// Distinct from logout: the status message tells the user why.
func (b *Board) ForceExpiry() {
	b.Session.Reset()
	b.Tasks.Clear()
	b.Lookup.Clear()
	b.Tasks.Status = StatusExpired
}

// expired routes an error through the forced-expiry rule. Returns true when
// the error was an unauthorized response and has been fully handled.
func (b *Board) expired(err error) bool {
	if todoapi.IsUnauthorized(err) {
		b.ForceExpiry()
		return true
	}
	return false
}

// FinishBootstrap ends the startup probe. Returns true when the stored
// session authenticated and the caller should hydrate (dashboard plus task
// list for the all filter).
func (b *Board) FinishBootstrap(user service.User, err error) bool {
	return b.Session.FinishBootstrap(user, err)
}

// AuthSucceeded transitions to Authenticated after login or signup. The
// caller clears the auth form and hydrates.
func (b *Board) AuthSucceeded(user service.User) {
	b.Session.AuthSucceeded(user)
	b.Tasks.Clear()
	b.Lookup.Clear()
}

// AuthFailed surfaces a rejected login or signup as a form-level error.
func (b *Board) AuthFailed(err error) {
	b.Session.AuthFailed(err)
}

// Logout clears everything and returns to Anonymous. Fail-safe: the outcome
// of the backend logout call is irrelevant to local state.
func (b *Board) Logout() {
	b.Session.Reset()
	b.Tasks.Clear()
	b.Lookup.Clear()
}

// BeginLoad starts a list fetch for the filter and drops any stale lookup
// result.
func (b *Board) BeginLoad(f Filter) {
	b.Tasks.BeginLoad(f)
	b.Lookup.Result = ""
}

// CommitLoad lands a list fetch, honoring forced expiry.
func (b *Board) CommitLoad(tasks []service.Task, err error) {
	if b.expired(err) {
		return
	}
	b.Tasks.CommitLoad(tasks, err)
}

// CommitDashboard lands a dashboard fetch, honoring forced expiry.
func (b *Board) CommitDashboard(d service.Dashboard, err error) {
	if b.expired(err) {
		return
	}
	b.Tasks.CommitDashboard(d, err)
}

// BeginCreate validates a new title; false means no-op.
func (b *Board) BeginCreate(title string) (string, bool) {
	return b.Tasks.BeginCreate(title)
}

// CommitCreate lands the create call. True means refresh list and dashboard
// in parallel, using the filter current at this moment.
func (b *Board) CommitCreate(err error) bool {
	if b.expired(err) {
		return false
	}
	return b.Tasks.CommitCreate(err)
}

// BeginToggle marks a toggle mutation as in flight.
func (b *Board) BeginToggle() {
	b.Tasks.BeginToggle()
}

// CommitToggle lands the update call; semantics mirror CommitCreate.
func (b *Board) CommitToggle(err error) bool {
	if b.expired(err) {
		return false
	}
	return b.Tasks.CommitToggle(err)
}

// BeginLookup validates a search title; false means no-op.
func (b *Board) BeginLookup(title string) (string, bool) {
	title, ok := b.Lookup.Begin(title)
	if !ok {
		return "", false
	}
	b.Tasks.Status = "Fetching task..."
	return title, true
}

// CommitLookup lands a lookup call. Not-found clears the result silently;
// unauthorized forces expiry; anything else lands in the result message.
func (b *Board) CommitLookup(task service.Task, err error) {
	switch {
	case err == nil:
		b.Lookup.CommitFound(task, b.Tasks.Filter)
		b.Tasks.Status = "Lookup complete."
	case todoapi.IsNotFound(err):
		b.Lookup.CommitNotFound()
		b.Tasks.Status = "Lookup failed."
	case b.expired(err):
	default:
		b.Lookup.CommitError(err)
		b.Tasks.Status = "Lookup failed."
	}
}
