package tui

import (
	"github.com/charmbracelet/lipgloss"

	"followaudit/pkg/audit"
)

var (
	// Color palette
	neonCyan    = lipgloss.Color("#00FFFF")
	neonMagenta = lipgloss.Color("#FF00FF")
	neonGreen   = lipgloss.Color("#39FF14")
	neonYellow  = lipgloss.Color("#FFFF00")
	neonOrange  = lipgloss.Color("#FF6700")
	errorRed    = lipgloss.Color("#FF0000")
	darkBg      = lipgloss.Color("#0A0E27")
	dimWhite    = lipgloss.Color("#B0B0B0")

	logoStyle = lipgloss.NewStyle().
			Foreground(neonCyan).
			Bold(true).
			Padding(1, 0, 0, 0)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neonMagenta).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.
				BorderForeground(neonCyan)

	titleStyle = lipgloss.NewStyle().
			Background(neonMagenta).
			Foreground(darkBg).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(neonCyan).
			Bold(true)

	actionStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(dimWhite)

	selectedActionStyle = lipgloss.NewStyle().
				Foreground(neonGreen).
				Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(neonCyan)

	confirmStyle = lipgloss.NewStyle().
			Foreground(neonYellow).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(neonGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorRed).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(neonOrange).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(dimWhite)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(1, 0, 0, 1)
)

// noticeStyle returns the style and icon for a notice level
func noticeStyle(level string) (lipgloss.Style, string) {
	switch level {
	case audit.LevelSuccess:
		return successStyle, "✓"
	case audit.LevelWarn:
		return warningStyle, "!"
	case audit.LevelError:
		return errorStyle, "✗"
	default:
		return infoStyle, "•"
	}
}
