package cli

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorSecondary = "#6B7280"
)

var (
	ChangeCreateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess))

	ChangeUpdateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning))

	ChangeDeleteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorError))

	ChangeNoopStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondary))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))
)
