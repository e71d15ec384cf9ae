package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"multipick/internal/selection"
)

// Overlay returns the terminal color produced by drawing c with its alpha over
// background. An unparsable background is treated as black.
func Overlay(c selection.Color, background string) lipgloss.Color {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{}
	}
	fg := colorful.Color{R: c.R, G: c.G, B: c.B}
	return lipgloss.Color(bg.BlendRgb(fg, c.A).Clamped().Hex())
}
