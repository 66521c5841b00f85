package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/controller"
	"taskboard/internal/password"
	"taskboard/internal/service"
)

// Messages. One per completed backend call; every result is routed through
// the board controller so the unauthorized-forces-expiry rule applies
// uniformly.

type bootstrapMsg struct {
	user service.User
	err  error
}

type authMsg struct {
	user service.User
	err  error
}

type logoutMsg struct{ err error }

type tasksMsg struct {
	tasks []service.Task
	err   error
}

type dashboardMsg struct {
	d   service.Dashboard
	err error
}

type createMsg struct{ err error }

type toggleMsg struct{ err error }

type lookupMsg struct {
	task service.Task
	err  error
}

func (m boardModel) bootstrapCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := m.svc.CurrentUser(m.ctx)
		return bootstrapMsg{user: user, err: err}
	}
}

func (m boardModel) loginCmd(creds service.Credentials) tea.Cmd {
	return func() tea.Msg {
		user, err := m.svc.Login(m.ctx, creds)
		return authMsg{user: user, err: err}
	}
}

func (m boardModel) signupCmd(req service.SignupRequest) tea.Cmd {
	return func() tea.Msg {
		user, err := m.svc.Signup(m.ctx, req)
		return authMsg{user: user, err: err}
	}
}

func (m boardModel) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return logoutMsg{err: m.svc.Logout(m.ctx)}
	}
}

// loadCmd captures the filter at issue time. A later filter switch must not
// change which subset an in-flight refresh fetches.
func (m boardModel) loadCmd(f controller.Filter) tea.Cmd {
	return func() tea.Msg {
		if f == controller.FilterAll {
			tasks, err := m.svc.ListTasks(m.ctx)
			return tasksMsg{tasks: tasks, err: err}
		}
		tasks, err := m.svc.ListTasksByStatus(m.ctx, f.Done())
		return tasksMsg{tasks: tasks, err: err}
	}
}

func (m boardModel) dashboardCmd() tea.Cmd {
	return func() tea.Msg {
		d, err := m.svc.Dashboard(m.ctx)
		return dashboardMsg{d: d, err: err}
	}
}

func (m boardModel) createCmd(title string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.CreateTask(m.ctx, title, false)
		return createMsg{err: err}
	}
}

func (m boardModel) toggleCmd(t service.Task) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.UpdateTask(m.ctx, t.ID, t.Title, !t.Status)
		return toggleMsg{err: err}
	}
}

func (m boardModel) lookupCmd(title string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.svc.TaskByTitle(m.ctx, title)
		return lookupMsg{task: task, err: err}
	}
}

// hydrateCmd fetches the dashboard and the all-filter task list in parallel.
func (m *boardModel) hydrateCmd() tea.Cmd {
	m.board.BeginLoad(controller.FilterAll)
	return tea.Batch(m.loadCmd(controller.FilterAll), m.dashboardCmd())
}

// refreshCmd re-fetches the current filter's list and the dashboard in
// parallel after a confirmed mutation.
func (m boardModel) refreshCmd() tea.Cmd {
	return tea.Batch(m.loadCmd(m.board.Tasks.Filter), m.dashboardCmd())
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bootstrapMsg:
		if m.board.FinishBootstrap(msg.user, msg.err) {
			cmd := m.hydrateCmd()
			return m, cmd
		}
		return m, nil

	case authMsg:
		if msg.err != nil {
			m.board.AuthFailed(msg.err)
			return m, nil
		}
		m.board.AuthSucceeded(msg.user)
		m.resetAuthForm()
		m.signupMode = false
		m.cursor = 0
		m.focus = focusTasks
		cmd := m.hydrateCmd()
		return m, cmd

	case logoutMsg:
		// Fail-safe: local state clears no matter what the server said.
		m.board.Logout()
		m.resetAuthForm()
		m.addInput.SetValue("")
		m.searchInput.SetValue("")
		m.cursor = 0
		m.focus = focusTasks
		return m, nil

	case tasksMsg:
		m.board.CommitLoad(msg.tasks, msg.err)
		m.clampCursor()
		return m, nil

	case dashboardMsg:
		m.board.CommitDashboard(msg.d, msg.err)
		return m, nil

	case createMsg:
		if m.board.CommitCreate(msg.err) {
			m.addInput.SetValue("")
			return m, m.refreshCmd()
		}
		return m, nil

	case toggleMsg:
		if m.board.CommitToggle(msg.err) {
			return m, m.refreshCmd()
		}
		return m, nil

	case lookupMsg:
		m.board.CommitLookup(msg.task, msg.err)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.board.Session.Phase {
		case controller.Anonymous:
			return m.updateAuth(msg)
		case controller.Authenticated:
			return m.updateBoard(msg)
		}
		return m, nil
	}

	return m, nil
}

func (m boardModel) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.authFields()

	switch msg.String() {
	case "tab", "down":
		m.moveAuthFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveAuthFocus(-1)
		return m, nil
	case "ctrl+s":
		m.signupMode = !m.signupMode
		m.board.Session.FormError = ""
		m.resetAuthForm()
		return m, nil
	case "enter":
		return m.submitAuth()
	}

	field := fields[m.authFocus]
	var cmd tea.Cmd
	m.authInputs[field], cmd = m.authInputs[field].Update(msg)
	if m.signupMode && field == authFieldPassword {
		m.strength = password.Evaluate(m.authInputs[authFieldPassword].Value())
	}
	return m, cmd
}

func (m *boardModel) moveAuthFocus(delta int) {
	fields := m.authFields()
	m.authInputs[fields[m.authFocus]].Blur()
	m.authFocus = (m.authFocus + delta + len(fields)) % len(fields)
	m.authInputs[fields[m.authFocus]].Focus()
}

func (m boardModel) submitAuth() (tea.Model, tea.Cmd) {
	username := m.authInputs[authFieldUsername].Value()
	pw := m.authInputs[authFieldPassword].Value()

	if m.signupMode {
		// The strength gate is local: a weak password never reaches the
		// backend.
		if !m.strength.Strong {
			m.board.Session.FormError = "Password does not meet all strength requirements."
			return m, nil
		}
		m.board.Session.FormError = ""
		return m, m.signupCmd(service.SignupRequest{
			Username: username,
			Email:    m.authInputs[authFieldEmail].Value(),
			Password: pw,
		})
	}

	m.board.Session.FormError = ""
	return m, m.loginCmd(service.Credentials{Username: username, Password: pw})
}

func (m boardModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil
	case "ctrl+l":
		m.board.Tasks.Status = "Logging out..."
		return m, m.logoutCmd()
	}

	switch m.focus {
	case focusTasks:
		return m.updateTaskList(msg)
	case focusAdd:
		if msg.String() == "enter" {
			if title, ok := m.board.BeginCreate(m.addInput.Value()); ok {
				return m, m.createCmd(title)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.addInput, cmd = m.addInput.Update(msg)
		return m, cmd
	case focusSearch:
		if msg.String() == "enter" {
			if title, ok := m.board.BeginLookup(m.searchInput.Value()); ok {
				return m, m.lookupCmd(title)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) updateTaskList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		m.cursor++
		m.clampCursor()
		return m, nil
	case "k", "up":
		m.cursor--
		m.clampCursor()
		return m, nil
	case "1":
		return m.switchFilter(controller.FilterAll)
	case "2":
		return m.switchFilter(controller.FilterOpen)
	case "3":
		return m.switchFilter(controller.FilterDone)
	case "enter", " ":
		if m.cursor < len(m.board.Tasks.Tasks) {
			t := m.board.Tasks.Tasks[m.cursor]
			m.board.BeginToggle()
			return m, m.toggleCmd(t)
		}
		return m, nil
	}
	return m, nil
}

// switchFilter re-fetches the list only; the dashboard is filter-independent.
func (m boardModel) switchFilter(f controller.Filter) (tea.Model, tea.Cmd) {
	m.board.BeginLoad(f)
	m.cursor = 0
	return m, m.loadCmd(f)
}

func (m *boardModel) cycleFocus(delta int) {
	m.addInput.Blur()
	m.searchInput.Blur()
	m.focus = focusArea((int(m.focus) + delta + 3) % 3)
	switch m.focus {
	case focusAdd:
		m.addInput.Focus()
	case focusSearch:
		m.searchInput.Focus()
	}
}
