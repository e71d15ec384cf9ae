package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"multipick/internal/domain"
)

// ItemRenderer handles rendering of list items
type ItemRenderer struct {
	styles      *Styles
	showDetails bool
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles, showDetails bool) *ItemRenderer {
	return &ItemRenderer{
		styles:      styles,
		showDetails: showDetails,
	}
}

// RenderItem renders an item as a block exactly width cells wide. A nil bg
// leaves the terminal background alone.
func (r *ItemRenderer) RenderItem(item domain.Item, width int, selected bool, bg lipgloss.TerminalColor) string {
	if width <= 0 {
		return ""
	}

	// Every part carries the background, otherwise the inner resets punch holes in it
	withBg := func(s lipgloss.Style) lipgloss.Style {
		if bg == nil {
			return s
		}
		return s.Background(bg)
	}

	marker := "  "
	if selected {
		marker = "● "
	}

	meta := r.meta(item)
	nameWidth := width - ansi.StringWidth(marker) - ansi.StringWidth(meta) - 1
	if nameWidth < 1 {
		// Not enough room for the metadata column
		meta = ""
		nameWidth = width - ansi.StringWidth(marker)
	}

	name := item.Name
	nameStyle := r.styles.FileName
	if item.IsDir {
		name += "/"
		nameStyle = r.styles.DirName
	}
	name = ansi.Truncate(name, nameWidth, "…")
	gap := width - ansi.StringWidth(marker) - ansi.StringWidth(name) - ansi.StringWidth(meta)
	if gap < 0 {
		gap = 0
	}

	line := withBg(r.styles.Marker).Render(marker) +
		withBg(nameStyle).Render(name) +
		withBg(lipgloss.NewStyle()).Render(strings.Repeat(" ", gap)) +
		withBg(r.styles.Meta).Render(meta)
	lines := []string{line}

	if r.showDetails {
		path := ansi.Truncate("  "+item.Path, width, "…")
		lines = append(lines, withBg(r.styles.Dim).Width(width).Render(path))
	}

	return strings.Join(lines, "\n")
}

// meta returns the size and age column of an item
func (r *ItemRenderer) meta(item domain.Item) string {
	var parts []string
	if !item.IsDir {
		parts = append(parts, humanize.Bytes(uint64(item.Size)))
	}
	if !item.ModTime.IsZero() {
		parts = append(parts, humanize.Time(item.ModTime))
	}
	return strings.Join(parts, "  ")
}
