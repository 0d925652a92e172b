package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1677ff"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8c8c8c"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1677ff"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#262626", Dark: "#d9d9d9"})
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8c8c8c"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#faad14"))
	sidebarStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).
			BorderForeground(lipgloss.Color("#d9d9d9"))
)
