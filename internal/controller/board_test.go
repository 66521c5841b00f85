package controller_test

import (
	"errors"
	"net/http"
	"testing"

	"taskboard/internal/backend/todoapi"
	"taskboard/internal/controller"
	"taskboard/internal/service"
)

func unauthorized() error {
	return &todoapi.Error{Status: http.StatusUnauthorized, Message: "Not logged in"}
}

func notFound() error {
	return &todoapi.Error{Status: http.StatusNotFound, Message: "Todo not found"}
}

func authedBoard() controller.Board {
	b := controller.NewBoard()
	b.FinishBootstrap(service.User{ID: 1, Username: "sam", Role: "USER"}, nil)
	return b
}

func TestBootstrap_FailureLandsAnonymous(t *testing.T) {
	b := controller.NewBoard()
	if b.Session.Phase != controller.Bootstrapping {
		t.Fatal("expected bootstrapping phase at start")
	}

	hydrate := b.FinishBootstrap(service.User{}, errors.New("Not logged in"))
	if hydrate {
		t.Error("failed bootstrap must not hydrate")
	}
	if b.Session.Phase != controller.Anonymous {
		t.Errorf("expected Anonymous, got %v", b.Session.Phase)
	}
	if b.Session.User != nil {
		t.Error("expected no bound user")
	}
}

func TestBootstrap_SuccessHydrates(t *testing.T) {
	b := controller.NewBoard()
	hydrate := b.FinishBootstrap(service.User{ID: 1, Username: "sam"}, nil)
	if !hydrate {
		t.Error("successful bootstrap must hydrate")
	}
	if !b.Session.Authenticated() {
		t.Error("expected Authenticated")
	}
	if b.Session.User == nil || b.Session.User.Username != "sam" {
		t.Errorf("expected bound user sam, got %+v", b.Session.User)
	}
}

func TestForcedExpiry_ClearsEverything(t *testing.T) {
	b := authedBoard()
	b.Tasks.Tasks = []service.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b", Status: true}}
	b.Tasks.Dashboard = &service.Dashboard{TotalTasks: 2}
	b.Lookup.Result = "Found: a (Open)"
	b.Lookup.HasSearched = true

	b.CommitLoad(nil, unauthorized())

	if b.Session.Phase != controller.Anonymous {
		t.Errorf("expected Anonymous after expiry, got %v", b.Session.Phase)
	}
	if b.Session.User != nil {
		t.Error("user state must be cleared")
	}
	if b.Tasks.Tasks != nil {
		t.Error("task list must be cleared")
	}
	if b.Tasks.Dashboard != nil {
		t.Error("dashboard must be cleared")
	}
	if b.Lookup.Result != "" || b.Lookup.HasSearched {
		t.Error("lookup state must be cleared")
	}
	if b.Tasks.Status != controller.StatusExpired {
		t.Errorf("expected expiry status, got %q", b.Tasks.Status)
	}
}

func TestForcedExpiry_OnEveryAuthenticatedOp(t *testing.T) {
	ops := map[string]func(b *controller.Board){
		"load":      func(b *controller.Board) { b.CommitLoad(nil, unauthorized()) },
		"dashboard": func(b *controller.Board) { b.CommitDashboard(service.Dashboard{}, unauthorized()) },
		"create":    func(b *controller.Board) { b.CommitCreate(unauthorized()) },
		"toggle":    func(b *controller.Board) { b.CommitToggle(unauthorized()) },
		"lookup":    func(b *controller.Board) { b.CommitLookup(service.Task{}, unauthorized()) },
	}

	for name, op := range ops {
		b := authedBoard()
		op(&b)
		if b.Session.Phase != controller.Anonymous {
			t.Errorf("%s: expected Anonymous after 401", name)
		}
		if b.Tasks.Status != controller.StatusExpired {
			t.Errorf("%s: expected expiry status, got %q", name, b.Tasks.Status)
		}
	}
}

func TestLogout_AlwaysEndsAnonymous(t *testing.T) {
	b := authedBoard()
	b.Tasks.Tasks = []service.Task{{ID: 1, Title: "a"}}
	b.Tasks.Dashboard = &service.Dashboard{TotalTasks: 1}
	b.Lookup.HasSearched = true

	// Local state transition runs regardless of the logout call's outcome;
	// the caller invokes it even when the network call failed.
	b.Logout()

	if b.Session.Phase != controller.Anonymous {
		t.Error("expected Anonymous after logout")
	}
	if b.Tasks.Tasks != nil || b.Tasks.Dashboard != nil {
		t.Error("expected view state cleared after logout")
	}
	if b.Lookup.HasSearched {
		t.Error("expected lookup cleared after logout")
	}
}

func TestAuthFailed_StaysAnonymousWithFormError(t *testing.T) {
	b := controller.NewBoard()
	b.FinishBootstrap(service.User{}, errors.New("Not logged in"))

	b.AuthFailed(&todoapi.Error{Status: http.StatusUnauthorized, Message: "Invalid credentials"})

	if b.Session.Phase != controller.Anonymous {
		t.Error("auth failure must not change session state")
	}
	if b.Session.FormError != "Invalid credentials" {
		t.Errorf("expected form error, got %q", b.Session.FormError)
	}

	b.AuthSucceeded(service.User{ID: 2, Username: "kim"})
	if b.Session.FormError != "" {
		t.Error("form error must clear on successful auth")
	}
}

func TestCreate_EmptyTitleIsNoOp(t *testing.T) {
	b := authedBoard()
	before := b.Tasks.Status

	if _, ok := b.BeginCreate("   "); ok {
		t.Error("blank title must be a no-op")
	}
	if b.Tasks.Status != before {
		t.Error("no-op create must not touch the status message")
	}
}

func TestCreate_FailureAbortsRefresh(t *testing.T) {
	b := authedBoard()
	if _, ok := b.BeginCreate("  buy milk  "); !ok {
		t.Fatal("expected create to proceed")
	}

	refresh := b.CommitCreate(errors.New("boom"))
	if refresh {
		t.Error("failed create must not trigger a refresh")
	}
	if b.Tasks.Status != "Error: boom" {
		t.Errorf("expected error status, got %q", b.Tasks.Status)
	}
}

func TestCreate_TrimsTitleAndJoinsRefresh(t *testing.T) {
	b := authedBoard()

	title, ok := b.BeginCreate("  buy milk  ")
	if !ok || title != "buy milk" {
		t.Fatalf("expected trimmed title, got %q ok=%v", title, ok)
	}
	if b.Tasks.Status != "Creating task..." {
		t.Errorf("expected in-flight status, got %q", b.Tasks.Status)
	}

	if !b.CommitCreate(nil) {
		t.Fatal("confirmed create must trigger the refresh")
	}

	// Each refresh leg commits independently; the trailing message waits for
	// the join.
	b.CommitLoad([]service.Task{{ID: 1, Title: "buy milk"}}, nil)
	if b.Tasks.Status == "Task created." {
		t.Error("trailing message must wait for both legs")
	}
	if len(b.Tasks.Tasks) != 1 {
		t.Error("list leg must commit immediately")
	}

	b.CommitDashboard(service.Dashboard{TotalTasks: 1, OpenTasks: 1}, nil)
	if b.Tasks.Status != "Task created." {
		t.Errorf("expected trailing create message, got %q", b.Tasks.Status)
	}
	if b.Tasks.Dashboard == nil || b.Tasks.Dashboard.TotalTasks != 1 {
		t.Error("dashboard leg must commit its result")
	}
}

// Scenario from the board: filter all, three tasks (two open, one done),
// toggling the done task refreshes to three open and zero completed.
func TestToggle_RefreshScenario(t *testing.T) {
	b := authedBoard()
	b.BeginLoad(controller.FilterAll)
	b.CommitLoad([]service.Task{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
		{ID: 3, Title: "c", Status: true},
	}, nil)
	b.CommitDashboard(service.Dashboard{TotalTasks: 3, OpenTasks: 2, CompletedTasks: 1}, nil)

	b.BeginToggle()
	if b.Tasks.Status != "Updating task..." {
		t.Errorf("expected in-flight status, got %q", b.Tasks.Status)
	}
	if !b.CommitToggle(nil) {
		t.Fatal("confirmed toggle must trigger the refresh")
	}

	b.CommitLoad([]service.Task{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
		{ID: 3, Title: "c"},
	}, nil)
	b.CommitDashboard(service.Dashboard{TotalTasks: 3, OpenTasks: 3, CompletedTasks: 0}, nil)

	if b.Tasks.Status != "Task updated." {
		t.Errorf("expected trailing update message, got %q", b.Tasks.Status)
	}
	total, open, done := b.Tasks.Counts()
	if total != 3 || open != 3 || done != 0 {
		t.Errorf("expected 3/3/0, got %d/%d/%d", total, open, done)
	}
	for _, task := range b.Tasks.Tasks {
		if !b.Tasks.Filter.Matches(task.Status) {
			t.Errorf("task %d contradicts the active filter", task.ID)
		}
	}
}

func TestCounts_DeriveLocallyWithoutDashboard(t *testing.T) {
	v := controller.NewTaskView()
	v.Tasks = []service.Task{
		{ID: 1, Status: false},
		{ID: 2, Status: true},
		{ID: 3, Status: true},
	}

	total, open, done := v.Counts()
	if total != 3 || open != 1 || done != 2 {
		t.Errorf("expected 3/1/2, got %d/%d/%d", total, open, done)
	}

	v.Dashboard = &service.Dashboard{TotalTasks: 10, OpenTasks: 4, CompletedTasks: 6}
	total, open, done = v.Counts()
	if total != 10 || open != 4 || done != 6 {
		t.Error("dashboard counts must win when present")
	}
}

func TestLookup_EmptyTitleIsNoOp(t *testing.T) {
	b := authedBoard()
	if _, ok := b.BeginLookup("  "); ok {
		t.Error("blank lookup must be a no-op")
	}
	if b.Lookup.HasSearched {
		t.Error("a no-op must not flip HasSearched")
	}
}

func TestLookup_NotFoundIsSilent(t *testing.T) {
	b := authedBoard()
	if _, ok := b.BeginLookup("missing"); !ok {
		t.Fatal("expected lookup to proceed")
	}

	b.CommitLookup(service.Task{}, notFound())

	if b.Lookup.Result != "" {
		t.Errorf("not-found must clear the result, got %q", b.Lookup.Result)
	}
	if !b.Lookup.HasSearched {
		t.Error("HasSearched must be true after any attempt")
	}
	if b.Tasks.Status != "Lookup failed." {
		t.Errorf("expected lookup-failed status, got %q", b.Tasks.Status)
	}
}

func TestLookup_AnnotatesFilterMismatch(t *testing.T) {
	b := authedBoard()
	b.BeginLoad(controller.FilterOpen)

	b.BeginLookup("ship it")
	b.CommitLookup(service.Task{ID: 9, Title: "ship it", Status: true}, nil)

	want := "Found: ship it (Done) (not in current filter)"
	if b.Lookup.Result != want {
		t.Errorf("expected %q, got %q", want, b.Lookup.Result)
	}
	if b.Tasks.Status != "Lookup complete." {
		t.Errorf("expected lookup-complete status, got %q", b.Tasks.Status)
	}
}

func TestLookup_AllFilterAlwaysMatches(t *testing.T) {
	b := authedBoard()
	b.BeginLookup("ship it")
	b.CommitLookup(service.Task{ID: 9, Title: "ship it", Status: true}, nil)

	want := "Found: ship it (Done)"
	if b.Lookup.Result != want {
		t.Errorf("expected %q, got %q", want, b.Lookup.Result)
	}
}

func TestLookup_OtherErrorsSurface(t *testing.T) {
	b := authedBoard()
	b.BeginLookup("x")
	b.CommitLookup(service.Task{}, &todoapi.Error{Status: http.StatusInternalServerError, Message: "boom"})

	if b.Lookup.Result != "Error: boom" {
		t.Errorf("expected surfaced error, got %q", b.Lookup.Result)
	}
}

func TestBeginLoad_ClearsStaleLookupResult(t *testing.T) {
	b := authedBoard()
	b.Lookup.Result = "Found: old (Open)"

	b.BeginLoad(controller.FilterDone)

	if b.Lookup.Result != "" {
		t.Error("switching filters must drop the stale lookup result")
	}
	if b.Tasks.Filter != controller.FilterDone {
		t.Errorf("expected done filter, got %q", b.Tasks.Filter)
	}
}

func TestFilter_Matches(t *testing.T) {
	if !controller.FilterAll.Matches(true) || !controller.FilterAll.Matches(false) {
		t.Error("all must match both statuses")
	}
	if controller.FilterOpen.Matches(true) || !controller.FilterOpen.Matches(false) {
		t.Error("open must match only open tasks")
	}
	if !controller.FilterDone.Matches(true) || controller.FilterDone.Matches(false) {
		t.Error("done must match only done tasks")
	}
}
