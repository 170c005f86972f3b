package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(28)
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	HelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	PlantStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	HerbStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	PredatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	RunningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	PausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

// SpeciesStyle returns the display style for a species series.
func SpeciesStyle(species string) lipgloss.Style {
	switch species {
	case "plants":
		return PlantStyle
	case "herbivores":
		return HerbStyle
	case "predators":
		return PredatorStyle
	}
	return ValueStyle
}
