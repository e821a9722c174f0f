package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	focusedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	noStyle          = lipgloss.NewStyle()
	helpStyle        = blurredStyle

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	partialStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = "[ " + blurredStyle.Render("Submit") + " ]"
)
