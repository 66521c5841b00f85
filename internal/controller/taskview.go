package controller

import (
	"fmt"
	"strings"

	"taskboard/internal/service"
)

// StatusReady is the idle status message.
const StatusReady = "Ready."

// TaskView owns the visible task collection, the active filter, the
// dashboard summary, and the transient status message.
//
// Consistency rule: the task slice always reflects the most recent completed
// fetch. Mutations never patch it locally; they trigger a refetch of the
// authoritative subset plus the dashboard, and the view only reports the
// mutation finished once both legs have landed.
type TaskView struct {
	Tasks     []service.Task
	Filter    Filter
	Dashboard *service.Dashboard
	Status    string

	// pending counts outstanding refresh legs after a confirmed mutation.
	// Each leg commits its own result immediately; the join only sequences
	// the trailing "Task created."/"Task updated." message.
	pending     int
	pendingVerb string
}

// NewTaskView returns an empty view on the all filter.
func NewTaskView() TaskView {
	return TaskView{Filter: FilterAll, Status: StatusReady}
}

// BeginLoad switches to the filter and marks the list as loading.
func (v *TaskView) BeginLoad(f Filter) {
	v.Filter = f
	v.Status = "Loading tasks..."
}

// CommitLoad replaces the task collection with a completed fetch.
// Responses commit in arrival order (last-resolved-wins); a stale response
// overwrites newer state, matching the original client.
func (v *TaskView) CommitLoad(tasks []service.Task, err error) {
	if err != nil {
		v.pending = 0
		v.Status = "Error: " + err.Error()
		return
	}
	v.Tasks = tasks
	if v.settlePending() {
		return
	}
	v.Status = fmt.Sprintf("Loaded %d task(s).", len(tasks))
}

// CommitDashboard stores a completed dashboard fetch. Independent of the
// list fetch: it commits its own result even when the other leg fails.
func (v *TaskView) CommitDashboard(d service.Dashboard, err error) {
	if err != nil {
		v.pending = 0
		v.Status = "Error: " + err.Error()
		return
	}
	v.Dashboard = &d
	v.settlePending()
}

// BeginCreate validates and normalizes a new task title. Returns false when
// the trimmed title is empty; the operation is then a no-op with no network
// call.
func (v *TaskView) BeginCreate(title string) (string, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}
	v.Status = "Creating task..."
	return title, true
}

// CommitCreate records the create call's outcome. Returns true when the
// caller should refresh the current filter's list and the dashboard in
// parallel; a failed create aborts the refresh.
func (v *TaskView) CommitCreate(err error) bool {
	return v.commitMutation("created", err)
}

// BeginToggle marks a status-toggle mutation as in flight.
func (v *TaskView) BeginToggle() {
	v.Status = "Updating task..."
}

// CommitToggle records the update call's outcome, mirroring CommitCreate's
// refresh-only-after-confirmed-mutation guarantee.
func (v *TaskView) CommitToggle(err error) bool {
	return v.commitMutation("updated", err)
}

func (v *TaskView) commitMutation(verb string, err error) bool {
	if err != nil {
		v.pending = 0
		v.Status = "Error: " + err.Error()
		return false
	}
	v.pending = 2
	v.pendingVerb = verb
	return true
}

// settlePending consumes one refresh leg and emits the trailing mutation
// message once both have completed.
func (v *TaskView) settlePending() bool {
	if v.pending == 0 {
		return false
	}
	v.pending--
	if v.pending == 0 {
		v.Status = "Task " + v.pendingVerb + "."
	}
	return true
}

// Counts returns total/open/done. Dashboard counts are authoritative when
// present; otherwise they derive from the local collection.
func (v *TaskView) Counts() (total, open, done int64) {
	if v.Dashboard != nil {
		return v.Dashboard.TotalTasks, v.Dashboard.OpenTasks, v.Dashboard.CompletedTasks
	}
	for _, t := range v.Tasks {
		if t.Status {
			done++
		} else {
			open++
		}
	}
	return int64(len(v.Tasks)), open, done
}

// Clear drops all view state, returning to the empty all-filter view.
func (v *TaskView) Clear() {
	v.Tasks = nil
	v.Dashboard = nil
	v.Filter = FilterAll
	v.pending = 0
	v.pendingVerb = ""
	v.Status = StatusReady
}
