package selection

// Point is a pointer position in cell coordinates
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle in cell coordinates
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Color is an RGBA color with channels in [0,1]
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// WithAlpha returns c with its alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Highlight alpha values
const (
	FocusedAlpha   = 0.35
	UnfocusedAlpha = 0.15
)

// DefaultColor is used when the caller doesn't supply a selection color
var DefaultColor = Color{R: 0.1720873, G: 0.4236527, B: 0.7686567, A: FocusedAlpha}

// EventKind classifies the input snapshot of a frame
type EventKind int

const (
	EventOther EventKind = iota
	EventPointerDown
	EventPointerUp
	EventUsed     // another control consumed the event
	EventDragExit // a drag left the host
	EventPaint    // layout has been measured and can be painted
)

// String returns a readable event kind name
func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventUsed:
		return "used"
	case EventDragExit:
		return "drag-exit"
	case EventPaint:
		return "paint"
	default:
		return "other"
	}
}

// Event is the input snapshot for one frame
type Event struct {
	Kind     EventKind
	Pointer  Point
	Range    bool // shift-like modifier
	Additive bool // control-like modifier
}

// isRelease reports whether the event ends a press
func (e Event) isRelease() bool {
	return e.Kind == EventPointerUp || e.Kind == EventUsed || e.Kind == EventDragExit
}
