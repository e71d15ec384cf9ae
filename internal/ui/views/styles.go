package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI.
// None of them add margins: every row of the list pane must map to one screen row.
type Styles struct {
	Title         lipgloss.Style
	Dir           lipgloss.Style
	Scan          lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	DirName       lipgloss.Style
	FileName      lipgloss.Style
	Meta          lipgloss.Style
	Marker        lipgloss.Style
	Details       lipgloss.Style
	DetailsFocus  lipgloss.Style
	DetailsTitle  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dir:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Scan:          lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		DirName:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		FileName:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Meta:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Details: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("238")).
			PaddingLeft(1),
		DetailsFocus: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("99")).
			PaddingLeft(1),
		DetailsTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
	}
}
