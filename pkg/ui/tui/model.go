package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"followaudit/pkg/audit"
	"followaudit/pkg/followset"
)

// Action is one of the operations offered by the form
type Action int

const (
	ActionCheck Action = iota
	ActionCheckAndUnfollow
	ActionRefresh
)

// Actions lists the selectable actions in display order
var Actions = []Action{ActionCheck, ActionCheckAndUnfollow, ActionRefresh}

func (a Action) String() string {
	switch a {
	case ActionCheck:
		return "Check drifted accounts"
	case ActionCheckAndUnfollow:
		return "Check and unfollow drifted accounts"
	case ActionRefresh:
		return "Refresh cache from live"
	default:
		return "Unknown action"
	}
}

// Factory builds a FollowAudit for token, reporting through notifier
type Factory func(token string, notifier audit.Notifier) (*audit.FollowAudit, error)

type focus int

const (
	focusToken focus = iota
	focusActions
)

// Model is the interactive form: a hidden token input, an action selector
// and an output panel with the notices of the last run
type Model struct {
	factory Factory

	tokenInput textinput.Model
	spinner    spinner.Model
	focus      focus
	cursor     int

	// Run state
	busy       bool
	running    Action
	confirming bool
	pending    *audit.FollowAudit
	recorder   *audit.RecordingNotifier
	drift      followset.Set
	notices    []audit.Notice

	width    int
	height   int
	quitting bool
}

// NewModel creates the form. token pre-fills the hidden input.
func NewModel(factory Factory, token string) Model {
	ti := textinput.New()
	ti.Placeholder = "paste your Threads access token"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Width = 48
	ti.SetValue(token)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		factory:    factory,
		tokenInput: ti,
		spinner:    s,
		focus:      focusToken,
	}
	if token != "" {
		m.setFocus(focusActions)
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the action under the cursor
func (m Model) Selected() Action {
	return Actions[m.cursor]
}

// Busy reports whether an operation is running
func (m Model) Busy() bool {
	return m.busy
}

// Confirming reports whether the form waits for the unfollow confirmation
func (m Model) Confirming() bool {
	return m.confirming
}

// Notices returns the notices shown in the output panel
func (m Model) Notices() []audit.Notice {
	out := make([]audit.Notice, len(m.notices))
	copy(out, m.notices)
	return out
}

// Token returns the current content of the token input
func (m Model) Token() string {
	return m.tokenInput.Value()
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusToken {
		m.tokenInput.Focus()
	} else {
		m.tokenInput.Blur()
	}
}

func (m *Model) addNotice(level, msg string) {
	m.notices = append(m.notices, audit.Notice{Level: level, Message: msg})
}
