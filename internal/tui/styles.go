package tui

import "github.com/charmbracelet/lipgloss"

const (
	reactColor   = "#61dafb"
	angularColor = "#dd0031"
	neutralColor = "#94a3b8"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	subtitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	categoryStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6E6E6E"))
	navStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#BFBFBF"))
	navActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	sidebarStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(lipgloss.Color("#3A3A3A")).PaddingRight(1)
	comparisonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	codeBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3A3A3A")).Padding(0, 1)
	focusedBoxStyle = codeBoxStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	copiedStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	demoBoxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#52525b")).Padding(0, 1)
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	loginBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#dd0031")).Padding(1, 3)
)

func badgeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0b0b0b")).Background(lipgloss.Color(color)).Padding(0, 1)
}
