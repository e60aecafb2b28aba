package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Panel        lipgloss.Style
	PanelTitle   lipgloss.Style
	PanelBody    lipgloss.Style
	Dot          lipgloss.Style
	DotActive    lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Help         lipgloss.Style
	Dim          lipgloss.Style
	Highlight    lipgloss.Style
	DraggingMark lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		PanelTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		PanelBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dot:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:         lipgloss.NewStyle().Faint(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		DraggingMark: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
	}
}
