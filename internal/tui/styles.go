package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7AB8F5"})

	styleSubtitle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"})

	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#58D68D"})

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#777777"})

	styleLabel = lipgloss.NewStyle().Bold(true)

	styleLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7AB8F5"})

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7AB8F5"}).
			Padding(1, 2).
			Width(modalWidth)
)

const (
	modalWidth  = 56
	tableHeight = 10

	colNameWidth  = 20
	colAgeWidth   = 5
	colEmailWidth = 30
)
