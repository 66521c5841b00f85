package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/config"
	"taskboard/internal/controller"
	"taskboard/internal/testutil"
)

func newTestModel(fake *testutil.FakeService) boardModel {
	cfg := &config.Config{ServerURL: "http://localhost:8080"}
	return newBoardModel(context.Background(), cfg, fake)
}

// drain runs a command tree to completion, feeding every resulting message
// back into the model, in order.
func drain(tb testing.TB, model tea.Model, cmd tea.Cmd) boardModel {
	tb.Helper()
	if cmd != nil {
		switch msg := cmd().(type) {
		case nil:
		case tea.BatchMsg:
			for _, c := range msg {
				model = drain(tb, model, c)
			}
		case tea.QuitMsg:
		default:
			var next tea.Cmd
			model, next = model.Update(msg)
			model = drain(tb, model, next)
		}
	}
	return model.(boardModel)
}

func press(tb testing.TB, m boardModel, key tea.KeyMsg) boardModel {
	tb.Helper()
	model, cmd := m.Update(key)
	return drain(tb, model, cmd)
}

func pressKey(tb testing.TB, m boardModel, t tea.KeyType) boardModel {
	return press(tb, m, tea.KeyMsg{Type: t})
}

func pressRune(tb testing.TB, m boardModel, r rune) boardModel {
	return press(tb, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func typeText(tb testing.TB, m boardModel, s string) boardModel {
	for _, r := range s {
		m = pressRune(tb, m, r)
	}
	return m
}

func bootstrapped(tb testing.TB, fake *testutil.FakeService) boardModel {
	tb.Helper()
	m := newTestModel(fake)
	return drain(tb, m, m.bootstrapCmd())
}

func TestBootstrap_StoredSessionHydratesBoard(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")
	fake.ForceLogin("ada")
	fake.AddTask("write report", false)
	fake.AddTask("ship release", true)

	m := bootstrapped(t, fake)

	if m.board.Session.Phase != controller.Authenticated {
		t.Fatalf("Phase = %v, want Authenticated", m.board.Session.Phase)
	}
	if got := len(m.board.Tasks.Tasks); got != 2 {
		t.Fatalf("len(Tasks) = %d, want 2", got)
	}
	if m.board.Tasks.Dashboard == nil {
		t.Fatal("Dashboard = nil, want hydrated")
	}
	total, open, done := m.board.Tasks.Counts()
	if total != 2 || open != 1 || done != 1 {
		t.Errorf("Counts() = %d/%d/%d, want 2/1/1", total, open, done)
	}
	if m.board.Tasks.Status != "Loaded 2 task(s)." {
		t.Errorf("Status = %q", m.board.Tasks.Status)
	}
}

func TestBootstrap_NoSessionLandsOnAuthForm(t *testing.T) {
	m := bootstrapped(t, testutil.NewFakeService())

	if m.board.Session.Phase != controller.Anonymous {
		t.Fatalf("Phase = %v, want Anonymous", m.board.Session.Phase)
	}
	if !strings.Contains(m.View(), "Log in") {
		t.Error("anonymous view should show the login form")
	}
}

func TestLogin_SuccessHydratesBoard(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")

	m := bootstrapped(t, fake)
	m = typeText(t, m, "ada")
	m = pressKey(t, m, tea.KeyTab)
	m = typeText(t, m, "pw")
	m = pressKey(t, m, tea.KeyEnter)

	if m.board.Session.Phase != controller.Authenticated {
		t.Fatalf("Phase = %v, want Authenticated", m.board.Session.Phase)
	}
	if m.board.Session.User.Username != "ada" {
		t.Errorf("User.Username = %q, want ada", m.board.Session.User.Username)
	}
	if m.board.Tasks.Status != "Loaded 0 task(s)." {
		t.Errorf("Status = %q", m.board.Tasks.Status)
	}
}

func TestLogin_BadCredentialsStayOnForm(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")

	m := bootstrapped(t, fake)
	m = typeText(t, m, "ada")
	m = pressKey(t, m, tea.KeyTab)
	m = typeText(t, m, "wrong")
	m = pressKey(t, m, tea.KeyEnter)

	if m.board.Session.Phase != controller.Anonymous {
		t.Fatalf("Phase = %v, want Anonymous", m.board.Session.Phase)
	}
	if m.board.Session.FormError != "Invalid credentials" {
		t.Errorf("FormError = %q", m.board.Session.FormError)
	}
}

func TestSignup_WeakPasswordNeverReachesBackend(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.SignupErr = errors.New("backend was reached")

	m := bootstrapped(t, fake)
	m = pressKey(t, m, tea.KeyCtrlS)
	m = typeText(t, m, "newuser")
	m = pressKey(t, m, tea.KeyTab)
	m = typeText(t, m, "new@example.com")
	m = pressKey(t, m, tea.KeyTab)
	m = typeText(t, m, "abc")
	m = pressKey(t, m, tea.KeyEnter)

	if m.board.Session.Phase != controller.Anonymous {
		t.Fatalf("Phase = %v, want Anonymous", m.board.Session.Phase)
	}
	want := "Password does not meet all strength requirements."
	if m.board.Session.FormError != want {
		t.Errorf("FormError = %q, want %q", m.board.Session.FormError, want)
	}
}

func TestSignup_StrongPasswordCreatesAccount(t *testing.T) {
	fake := testutil.NewFakeService()

	m := bootstrapped(t, fake)
	m = pressKey(t, m, tea.KeyCtrlS)
	m = typeText(t, m, "newuser")
	m = pressKey(t, m, tea.KeyTab)
	m = typeText(t, m, "new@example.com")
	m = pressKey(t, m, tea.KeyTab)
	m = typeText(t, m, "Str0ng!Enough")
	m = pressKey(t, m, tea.KeyEnter)

	if m.board.Session.Phase != controller.Authenticated {
		t.Fatalf("Phase = %v, want Authenticated", m.board.Session.Phase)
	}
	if m.board.Session.User.Username != "newuser" {
		t.Errorf("User.Username = %q, want newuser", m.board.Session.User.Username)
	}
}

func TestSignup_MeterTracksPasswordKeystrokes(t *testing.T) {
	m := bootstrapped(t, testutil.NewFakeService())
	m = pressKey(t, m, tea.KeyCtrlS)
	m = pressKey(t, m, tea.KeyTab)
	m = pressKey(t, m, tea.KeyTab)
	m = typeText(t, m, "abc")

	if m.strength.Satisfied != 2 {
		t.Errorf("Satisfied = %d, want 2", m.strength.Satisfied)
	}
	if m.strength.Label != "Weak" {
		t.Errorf("Label = %q, want Weak", m.strength.Label)
	}
}

func TestToggle_RefreshesListAndDashboard(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")
	fake.ForceLogin("ada")
	fake.AddTask("write report", false)

	m := bootstrapped(t, fake)
	m = pressKey(t, m, tea.KeyEnter)

	if m.board.Tasks.Status != "Task updated." {
		t.Errorf("Status = %q, want %q", m.board.Tasks.Status, "Task updated.")
	}
	if !m.board.Tasks.Tasks[0].Status {
		t.Error("task should be done after toggle")
	}
	total, open, done := m.board.Tasks.Counts()
	if total != 1 || open != 0 || done != 1 {
		t.Errorf("Counts() = %d/%d/%d, want 1/0/1", total, open, done)
	}
}

func TestCreate_TrimsTitleAndRefreshes(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")
	fake.ForceLogin("ada")

	m := bootstrapped(t, fake)
	m = pressKey(t, m, tea.KeyTab) // focus add input
	m = typeText(t, m, "  buy milk  ")
	m = pressKey(t, m, tea.KeyEnter)

	if m.board.Tasks.Status != "Task created." {
		t.Errorf("Status = %q, want %q", m.board.Tasks.Status, "Task created.")
	}
	if len(m.board.Tasks.Tasks) != 1 || m.board.Tasks.Tasks[0].Title != "buy milk" {
		t.Errorf("Tasks = %+v, want one task titled %q", m.board.Tasks.Tasks, "buy milk")
	}
	if m.addInput.Value() != "" {
		t.Errorf("add input = %q, want cleared", m.addInput.Value())
	}
}

func TestCreate_BlankTitleIsNoOp(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")
	fake.ForceLogin("ada")

	m := bootstrapped(t, fake)
	before := m.board.Tasks.Status
	m = pressKey(t, m, tea.KeyTab)
	m = typeText(t, m, "   ")
	m = pressKey(t, m, tea.KeyEnter)

	if len(m.board.Tasks.Tasks) != 0 {
		t.Errorf("Tasks = %+v, want none", m.board.Tasks.Tasks)
	}
	if m.board.Tasks.Status != before {
		t.Errorf("Status = %q, want unchanged %q", m.board.Tasks.Status, before)
	}
}

func TestFilterKeys_FetchSubsetFromBackend(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")
	fake.ForceLogin("ada")
	fake.AddTask("open task", false)
	fake.AddTask("done task", true)

	m := bootstrapped(t, fake)

	m = pressRune(t, m, '2')
	if m.board.Tasks.Filter != controller.FilterOpen {
		t.Fatalf("Filter = %q, want open", m.board.Tasks.Filter)
	}
	if len(m.board.Tasks.Tasks) != 1 || m.board.Tasks.Tasks[0].Title != "open task" {
		t.Errorf("open subset = %+v", m.board.Tasks.Tasks)
	}

	m = pressRune(t, m, '3')
	if len(m.board.Tasks.Tasks) != 1 || m.board.Tasks.Tasks[0].Title != "done task" {
		t.Errorf("done subset = %+v", m.board.Tasks.Tasks)
	}

	m = pressRune(t, m, '1')
	if len(m.board.Tasks.Tasks) != 2 {
		t.Errorf("all subset = %+v", m.board.Tasks.Tasks)
	}
}

func TestExpiredSession_ForcesReturnToAuthForm(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")
	fake.ForceLogin("ada")
	fake.AddTask("write report", false)

	m := bootstrapped(t, fake)
	fake.ExpireSession()
	m = pressRune(t, m, '2')

	if m.board.Session.Phase != controller.Anonymous {
		t.Fatalf("Phase = %v, want Anonymous", m.board.Session.Phase)
	}
	if m.board.Tasks.Status != controller.StatusExpired {
		t.Errorf("Status = %q, want %q", m.board.Tasks.Status, controller.StatusExpired)
	}
	if len(m.board.Tasks.Tasks) != 0 {
		t.Errorf("Tasks = %+v, want cleared", m.board.Tasks.Tasks)
	}
}

func TestLookup_AnnotatesFilterMismatch(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")
	fake.ForceLogin("ada")
	fake.AddTask("ship release", true)

	m := bootstrapped(t, fake)
	m = pressRune(t, m, '2') // open filter; the done task is out of view
	m = pressKey(t, m, tea.KeyTab)
	m = pressKey(t, m, tea.KeyTab) // focus search input
	m = typeText(t, m, "ship release")
	m = pressKey(t, m, tea.KeyEnter)

	want := "Found: ship release (Done) (not in current filter)"
	if m.board.Lookup.Result != want {
		t.Errorf("Result = %q, want %q", m.board.Lookup.Result, want)
	}
	if m.board.Tasks.Status != "Lookup complete." {
		t.Errorf("Status = %q", m.board.Tasks.Status)
	}
}

func TestLookup_NotFoundShowsEmptyState(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")
	fake.ForceLogin("ada")

	m := bootstrapped(t, fake)
	m = pressKey(t, m, tea.KeyTab)
	m = pressKey(t, m, tea.KeyTab)
	m = typeText(t, m, "nope")
	m = pressKey(t, m, tea.KeyEnter)

	if m.board.Lookup.Result != "" {
		t.Errorf("Result = %q, want empty", m.board.Lookup.Result)
	}
	if !m.board.Lookup.HasSearched {
		t.Error("HasSearched = false, want true")
	}
	if !strings.Contains(m.View(), "No matching task.") {
		t.Error("view should show the searched-but-empty state")
	}
}

func TestLogout_FailSafeDespiteBackendError(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddUser("ada", "ada@example.com", "pw")
	fake.ForceLogin("ada")
	fake.LogoutErr = errors.New("backend unavailable")

	m := bootstrapped(t, fake)
	m = pressKey(t, m, tea.KeyCtrlL)

	if m.board.Session.Phase != controller.Anonymous {
		t.Fatalf("Phase = %v, want Anonymous", m.board.Session.Phase)
	}
	if m.board.Session.User != nil {
		t.Error("User should be nil after logout")
	}
	if m.board.Tasks.Status != controller.StatusReady {
		t.Errorf("Status = %q, want %q", m.board.Tasks.Status, controller.StatusReady)
	}
}
