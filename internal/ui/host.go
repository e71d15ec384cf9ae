package ui

import (
	"multipick/internal/selection"
)

// Pane names double as window ids for selection.WindowFocus
const (
	paneList    = "list"
	paneDetails = "details"
)

// paneTracker knows which pane holds input focus
type paneTracker struct {
	terminalFocused bool
	active          string
}

func newPaneTracker() *paneTracker {
	// Terminals that don't report focus never send FocusMsg, so start focused
	return &paneTracker{terminalFocused: true, active: paneList}
}

// FocusedWindow implements selection.WindowTracker
func (p *paneTracker) FocusedWindow() string {
	if !p.terminalFocused {
		return ""
	}
	return p.active
}

// toggle moves focus to the other pane
func (p *paneTracker) toggle() {
	if p.active == paneList {
		p.active = paneDetails
	} else {
		p.active = paneList
	}
}

type overlay struct {
	rect  selection.Rect
	color selection.Color
}

// listHost is the list pane as seen by the selection controller
type listHost struct {
	selection.FocusProvider

	panel    selection.Rect
	lastRect selection.Rect
	painting bool
	overlays []overlay
	redraw   bool
}

// Redraw implements selection.Host
func (h *listHost) Redraw() {
	h.redraw = true
}

// PaintHighlight implements selection.Host. Painting only happens while a frame is being drawn.
func (h *listHost) PaintHighlight(r selection.Rect, c selection.Color) {
	if !h.painting || r.Empty() {
		return
	}
	h.overlays = append(h.overlays, overlay{rect: r, color: c})
}

// LastRect implements selection.Host
func (h *listHost) LastRect() selection.Rect {
	return h.lastRect
}

// ContainsPointer implements selection.Host
func (h *listHost) ContainsPointer(p selection.Point) bool {
	return h.panel.Contains(p)
}

// beginPaint resets the per-frame paint state
func (h *listHost) beginPaint(panel selection.Rect) {
	h.panel = panel
	h.painting = true
	h.overlays = h.overlays[:0]
	h.lastRect = selection.Rect{}
}

func (h *listHost) endPaint() {
	h.painting = false
	h.lastRect = selection.Rect{}
}

// overlayAt returns the topmost overlay covering row y
func (h *listHost) overlayAt(y int) (selection.Color, bool) {
	for i := len(h.overlays) - 1; i >= 0; i-- {
		r := h.overlays[i].rect
		if y >= r.Y && y < r.Y+r.H {
			return h.overlays[i].color, true
		}
	}
	return selection.Color{}, false
}
