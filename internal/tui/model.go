package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/config"
	"taskboard/internal/controller"
	"taskboard/internal/password"
	"taskboard/internal/service"
)

type focusArea int

const (
	focusTasks focusArea = iota
	focusAdd
	focusSearch
)

const (
	authFieldUsername = iota
	authFieldEmail
	authFieldPassword
)

// boardModel is the Bubble Tea model for the interactive board. All
// session and task state lives in the controller; the model only holds
// terminal concerns: inputs, focus, cursor, window size.
type boardModel struct {
	ctx context.Context
	cfg *config.Config
	svc service.Service

	board controller.Board

	width  int
	height int

	// Auth screen.
	signupMode bool
	authInputs [3]textinput.Model
	authFocus  int
	strength   password.Result

	// Board screen.
	focus       focusArea
	cursor      int
	addInput    textinput.Model
	searchInput textinput.Model
}

func newBoardModel(ctx context.Context, cfg *config.Config, svc service.Service) boardModel {
	m := boardModel{
		ctx:   ctx,
		cfg:   cfg,
		svc:   svc,
		board: controller.NewBoard(),
	}

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	pw := textinput.New()
	pw.Placeholder = "password"
	pw.EchoMode = textinput.EchoPassword
	pw.CharLimit = 128

	m.authInputs = [3]textinput.Model{username, email, pw}
	m.strength = password.Evaluate("")

	m.addInput = textinput.New()
	m.addInput.Placeholder = "new task title"
	m.addInput.CharLimit = 200

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "find task by title"
	m.searchInput.CharLimit = 200

	return m
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.bootstrapCmd(), textinput.Blink)
}

// authFields lists the input indices active in the current auth mode,
// in tab order.
func (m boardModel) authFields() []int {
	if m.signupMode {
		return []int{authFieldUsername, authFieldEmail, authFieldPassword}
	}
	return []int{authFieldUsername, authFieldPassword}
}

func (m *boardModel) resetAuthForm() {
	for i := range m.authInputs {
		m.authInputs[i].SetValue("")
		m.authInputs[i].Blur()
	}
	m.authFocus = 0
	m.authInputs[authFieldUsername].Focus()
	m.strength = password.Evaluate("")
}

func (m *boardModel) clampCursor() {
	if n := len(m.board.Tasks.Tasks); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
