// Package selection tracks multi-item selection for lists drawn in an
// immediate-mode loop. The host calls Controller.SetState once per item per
// frame; the controller infers clicks, range and additive selection, and
// drag-away deselection from the frame's Event and the item's last painted
// rectangle.
//
// A Controller is owned by a single panel and is not safe for concurrent use.
package selection

// Host is the panel drawing the selectable list
type Host interface {
	FocusProvider

	// Redraw asks the host to draw another frame
	Redraw()
	// PaintHighlight draws a translucent overlay over r
	PaintHighlight(r Rect, c Color)
	// LastRect returns the bounds of the item drawn last. Only valid during paint events.
	LastRect() Rect
	// ContainsPointer reports whether p lies inside the host panel
	ContainsPointer(p Point) bool
}

// Controller runs the selection state machine for one list
type Controller struct {
	store *Store
}

// NewController creates a controller with an empty store
func NewController() *Controller {
	return &Controller{store: NewStore()}
}

// Store returns the underlying store
func (c *Controller) Store() *Store {
	return c.store
}

// SelectedIndexes returns the selected indexes in ascending order
func (c *Controller) SelectedIndexes() []int {
	return c.store.SelectedIndexes()
}

// IsSelected reports whether item index is selected
func (c *Controller) IsSelected(index int) bool {
	return c.store.IsSelected(index)
}

// SetState processes ev for the item at index using DefaultColor.
// It returns true while the item is selected.
func (c *Controller) SetState(host Host, list List, index int, ev Event) bool {
	return c.SetStateColor(host, list, index, ev, DefaultColor)
}

// SetStateColor processes ev for the item at index and paints it with color
// when selected. It returns true while the item is selected.
func (c *Controller) SetStateColor(host Host, list List, index int, ev Event, color Color) bool {
	c.store.Bind(list)

	// The list may have shrunk since the host last drew it
	rec, err := c.store.Record(index)
	if err != nil {
		return false
	}

	if ev.Kind == EventPaint {
		rec.Rect = host.LastRect()
	}

	toggle := false
	switch {
	case ev.Kind == EventPointerDown:
		wasPressed := rec.pressed
		rec.pressed = rec.Rect.Contains(ev.Pointer)
		if rec.pressed && !wasPressed && !rec.Selected {
			toggle = true
			// Keep the release of this press from undoing the selection
			rec.canBeDeselected = false
		}
	case ev.isRelease():
		inside := rec.Rect.Contains(ev.Pointer)
		switch {
		case !rec.canBeDeselected:
			rec.canBeDeselected = true
		case rec.pressed && rec.Selected && inside:
			toggle = true
		case rec.Selected && !ev.Range && !ev.Additive && !inside && host.ContainsPointer(ev.Pointer):
			rec.Selected = false
			host.Redraw()
		}
		rec.pressed = false
	}

	if toggle {
		rec.Selected = !rec.Selected
		switch {
		case ev.Range:
			c.store.confirmAnchor(rec.Index)
			c.store.selectRange(c.store.anchor, rec.Index)
		case !ev.Additive:
			if rec.Selected {
				c.store.deselectAll(rec.Index)
				c.store.anchor = rec.Index
			} else {
				c.store.deselectAll(-1)
				c.store.anchor = -1
			}
		}
		host.Redraw()
	}

	if !rec.Selected {
		return false
	}
	highlight := color.WithAlpha(UnfocusedAlpha)
	if host.Focused() {
		highlight = color.WithAlpha(FocusedAlpha)
	}
	host.PaintHighlight(rec.Rect, highlight)
	return true
}
