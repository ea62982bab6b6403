package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).MarginTop(1)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	copiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	badgeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("236")).Padding(0, 1)
	nameStyle     = lipgloss.NewStyle().Bold(true)
	usernameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	bioStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250"))
	avatarStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Align(lipgloss.Center)
)
