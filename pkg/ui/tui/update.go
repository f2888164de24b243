package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"followaudit/pkg/audit"
	"followaudit/pkg/followset"
)

// Message types for the TUI

// ActionDoneMsg is sent when a selected action finishes
type ActionDoneMsg struct {
	Action  Action
	Notices []audit.Notice
	Drift   followset.Set
	Audit   *audit.FollowAudit
	Err     error

	// FetchErr is set when the live list could not be fetched, in which
	// case Drift is not meaningful
	FetchErr error

	recorder *audit.RecordingNotifier
}

// UnfollowDoneMsg is sent when the confirmed unfollow finishes
type UnfollowDoneMsg struct {
	Notices []audit.Notice
	Report  audit.UnfollowReport
}

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ActionDoneMsg:
		return m.handleActionDone(msg)

	case UnfollowDoneMsg:
		m.busy = false
		m.notices = append(m.notices, msg.Notices...)
		if !msg.Report.Succeeded.IsEmpty() {
			m.addNotice(audit.LevelInfo, "The cache file was not rewritten; refresh the cache to save the new list")
		}
		return m, nil
	}

	if m.focus == focusToken && !m.busy && !m.confirming {
		var cmd tea.Cmd
		m.tokenInput, cmd = m.tokenInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// One operation at a time
	if m.busy {
		return m, nil
	}

	if m.confirming {
		return m.handleConfirmKey(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyTab, tea.KeyShiftTab:
		if m.focus == focusToken {
			m.setFocus(focusActions)
		} else {
			m.setFocus(focusToken)
		}
		return m, nil

	case tea.KeyEnter:
		return m.run()
	}

	if m.focus == focusActions {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(Actions)-1 {
				m.cursor++
			}
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.confirming = false
		m.busy = true
		m.notices = nil
		target, recorder, drift := m.pending, m.recorder, m.drift
		m.pending, m.recorder, m.drift = nil, nil, nil
		return m, tea.Batch(m.spinner.Tick, unfollowCmd(target, recorder, drift))

	case "n", "esc":
		m.confirming = false
		m.pending, m.recorder, m.drift = nil, nil, nil
		m.addNotice(audit.LevelInfo, "Unfollow cancelled")
	}
	return m, nil
}

// run starts the selected action
func (m Model) run() (tea.Model, tea.Cmd) {
	token := strings.TrimSpace(m.tokenInput.Value())
	m.notices = nil
	if token == "" {
		m.addNotice(audit.LevelWarn, "Please enter your access token")
		m.setFocus(focusToken)
		return m, nil
	}

	m.busy = true
	m.running = m.Selected()
	return m, tea.Batch(m.spinner.Tick, runActionCmd(m.factory, token, m.running))
}

func (m Model) handleActionDone(msg ActionDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.notices = append(m.notices, msg.Notices...)
	if msg.Err != nil {
		m.addNotice(audit.LevelError, msg.Err.Error())
		return m, nil
	}

	if msg.Action != ActionCheckAndUnfollow {
		return m, nil
	}
	if msg.FetchErr != nil {
		m.addNotice(audit.LevelWarn, audit.NoticeLiveUnavailable)
		return m, nil
	}
	if !msg.Drift.IsEmpty() {
		m.confirming = true
		m.pending = msg.Audit
		m.recorder = msg.recorder
		m.drift = msg.Drift
	}
	return m, nil
}

// Commands

// runActionCmd builds a FollowAudit, loads the cache and runs action
func runActionCmd(factory Factory, token string, action Action) tea.Cmd {
	return func() tea.Msg {
		notes := audit.NewRecordingNotifier()
		done := ActionDoneMsg{Action: action}

		a, err := factory(token, notes)
		if err != nil {
			done.Err = err
			done.Notices = notes.Notices()
			return done
		}
		if err := a.Load(); err != nil {
			done.Err = err
			done.Notices = notes.Notices()
			return done
		}

		switch action {
		case ActionCheck:
			done.Drift = a.ComputeDrift()
			done.FetchErr = a.LastFetchError()
		case ActionCheckAndUnfollow:
			done.Drift = a.ComputeDrift()
			done.FetchErr = a.LastFetchError()
			done.Audit = a
			done.recorder = notes
		case ActionRefresh:
			done.Err = a.RefreshCache()
		default:
			done.Err = fmt.Errorf("unknown action %d", action)
		}

		done.Notices = notes.Notices()
		return done
	}
}

// unfollowCmd unfollows drift using the audit that computed it. The audit
// still reports to the recorder of the check run, so it is reset first.
func unfollowCmd(a *audit.FollowAudit, recorder *audit.RecordingNotifier, drift followset.Set) tea.Cmd {
	return func() tea.Msg {
		recorder.Reset()
		report := a.Unfollow(drift)
		return UnfollowDoneMsg{Notices: recorder.Notices(), Report: report}
	}
}
