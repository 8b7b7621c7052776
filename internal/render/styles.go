package render

import "github.com/charmbracelet/lipgloss"

// Row styles
var (
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	ValueStyle = lipgloss.NewStyle()
)
