package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusKind selects the style of the status row
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// Renderer handles the static parts of the screen. The list pane itself is
// drawn item by item by the model because each item's bounds feed the
// selection controller.
type Renderer struct {
	styles *Styles
	items  *ItemRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showDetails bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		items:  NewItemRenderer(styles, showDetails),
	}
}

// Items returns the item renderer
func (r *Renderer) Items() *ItemRenderer {
	return r.items
}

// RenderHeader renders the title row, exactly one line
func (r *Renderer) RenderHeader(dir string, scanning bool, width int) string {
	title := r.styles.Title.Render("multipick") + " " + r.styles.Dir.Render(dir)
	if scanning {
		title += " " + r.styles.Scan.Render("(scanning…)")
	}
	return ansi.Truncate(title, width, "…")
}

// RenderStatus renders the status row, exactly one line
func (r *Renderer) RenderStatus(message string, kind StatusKind, width int) string {
	style := r.styles.Status
	switch kind {
	case StatusSuccess:
		style = r.styles.StatusSuccess
	case StatusError:
		style = r.styles.StatusError
	}
	return style.Render(ansi.Truncate(message, width, "…"))
}

// RenderBlankRow renders an empty list row of the given width
func (r *Renderer) RenderBlankRow(width int) string {
	return strings.Repeat(" ", width)
}

// RenderEmpty renders the placeholder shown when the directory has no entries
func (r *Renderer) RenderEmpty(scanning bool, width int) string {
	msg := "No entries"
	if scanning {
		msg = "Scanning…"
	}
	return r.styles.Dim.Render(ansi.Truncate("  "+msg, width, "…"))
}

// RenderDetails renders the details pane listing the selected names
func (r *Renderer) RenderDetails(names []string, focused bool, width, height int) string {
	if width < 3 || height < 1 {
		return ""
	}
	style := r.styles.Details
	if focused {
		style = r.styles.DetailsFocus
	}
	// Border and padding take two columns
	inner := width - 2

	lines := []string{r.styles.DetailsTitle.Render(fmt.Sprintf("Selected: %d", len(names)))}
	for i, name := range names {
		if len(lines) == height-1 && i < len(names)-1 {
			lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("… %d more", len(names)-i)))
			break
		}
		lines = append(lines, ansi.Truncate(name, inner, "…"))
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return style.Width(inner + 1).Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}
