package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `┏━╸┏━┓╻  ╻  ┏━┓╻ ╻   ┏━┓╻ ╻╺┳┓╻╺┳╸
┣╸ ┃ ┃┃  ┃  ┃ ┃┃╻┃   ┣━┫┃ ┃ ┃┃┃ ┃
╹  ┗━┛┗━╸┗━╸┗━┛┗┻┛   ╹ ╹┗━┛╺┻┛╹ ╹`

// View renders the form
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		logoStyle.Render(logo),
		m.renderTokenPanel(),
		m.renderActionsPanel(),
	}

	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	if len(m.notices) > 0 {
		sections = append(sections, m.renderNotices())
	}
	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) panel(focused bool) lipgloss.Style {
	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style
}

func (m Model) renderTokenPanel() string {
	content := labelStyle.Render("Threads access token") + "\n" + m.tokenInput.View()
	return m.panel(m.focus == focusToken).Render(content)
}

func (m Model) renderActionsPanel() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Action"))
	for i, action := range Actions {
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(selectedActionStyle.Render("> " + action.String()))
		} else {
			b.WriteString(actionStyle.Render(action.String()))
		}
	}
	return m.panel(m.focus == focusActions).Render(b.String())
}

func (m Model) renderStatus() string {
	switch {
	case m.busy:
		return fmt.Sprintf(" %s %s...", m.spinner.View(), m.running.String())
	case m.confirming:
		return confirmStyle.Render(fmt.Sprintf(" Unfollow these %d accounts? (y/n)", m.drift.Len()))
	}
	return ""
}

func (m Model) renderNotices() string {
	var lines []string
	for _, n := range m.notices {
		style, icon := noticeStyle(n.Level)
		lines = append(lines, style.Render(icon+" "+n.Message))
	}
	return m.panel(false).Render(titleStyle.Render("Output") + "\n" + strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	if m.confirming {
		return helpStyle.Render("y: unfollow • n: cancel • ctrl+c: quit")
	}
	return helpStyle.Render("tab: switch field • ↑/↓: choose action • enter: run • esc: quit")
}
