package selection

// FocusProvider answers whether the host currently holds input focus
type FocusProvider interface {
	Focused() bool
}

// WindowTracker reports which window currently holds input focus
type WindowTracker interface {
	FocusedWindow() string
}

// WindowFocus is focused only while its window is the tracker's focused window
type WindowFocus struct {
	Window  string
	Tracker WindowTracker
}

// Focused implements FocusProvider
func (f WindowFocus) Focused() bool {
	if f.Tracker == nil {
		return false
	}
	return f.Tracker.FocusedWindow() == f.Window
}

// PanelFocus is used by hosts without a window of their own. It is always focused.
type PanelFocus struct{}

// Focused implements FocusProvider
func (PanelFocus) Focused() bool {
	return true
}
