package selection

import (
	"errors"
	"reflect"
)

// ErrIndexOutOfRange is returned when a record index doesn't exist in the store
var ErrIndexOutOfRange = errors.New("selection: index out of range")

// List is the host's backing collection. Only its identity and length are used.
type List interface {
	Len() int
}

// Record holds the selection state of one item
type Record struct {
	Index    int
	Rect     Rect // bounds from the most recent paint event
	Selected bool

	pressed         bool
	canBeDeselected bool
}

// Pressed reports whether the pointer went down inside the item and hasn't been released
func (r *Record) Pressed() bool {
	return r.pressed
}

// Store holds the per-item records for one bound list
type Store struct {
	list    List
	bound   bool
	records []*Record
	anchor  int // index of the record that started the current range, -1 if none
}

// NewStore creates an empty, unbound store
func NewStore() *Store {
	return &Store{anchor: -1}
}

// Bind rebuilds the records when list differs from the bound list by identity or length
func (s *Store) Bind(list List) {
	n := 0
	if list != nil {
		n = list.Len()
	}
	if s.bound && sameList(s.list, list) && len(s.records) == n {
		return
	}

	s.list = list
	s.bound = true
	s.anchor = -1
	s.records = make([]*Record, n)
	for i := range s.records {
		s.records[i] = &Record{Index: i, canBeDeselected: true}
	}
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.records)
}

// Record returns the record at index i
func (s *Store) Record(i int) (*Record, error) {
	if i < 0 || i > len(s.records)-1 {
		return nil, ErrIndexOutOfRange
	}
	return s.records[i], nil
}

// IsSelected reports whether the item at index i is selected
func (s *Store) IsSelected(i int) bool {
	rec, err := s.Record(i)
	if err != nil {
		return false
	}
	return rec.Selected
}

// SelectedIndexes returns the selected indexes in ascending order
func (s *Store) SelectedIndexes() []int {
	indexes := make([]int, 0)
	for _, rec := range s.records {
		if rec.Selected {
			indexes = append(indexes, rec.Index)
		}
	}
	return indexes
}

// Anchor returns the index of the current range anchor
func (s *Store) Anchor() (int, bool) {
	if s.anchor < 0 || s.anchor >= len(s.records) {
		return -1, false
	}
	return s.anchor, true
}

// confirmAnchor makes index the anchor unless a selected anchor already exists
func (s *Store) confirmAnchor(index int) {
	if a, ok := s.Anchor(); ok && s.records[a].Selected {
		return
	}
	s.anchor = index
}

// deselectAll clears every record except the one at keep (-1 keeps none)
func (s *Store) deselectAll(keep int) {
	for _, rec := range s.records {
		if rec.Index == keep {
			continue
		}
		rec.Selected = false
	}
}

// selectRange selects [from, to] in either order and deselects everything else
func (s *Store) selectRange(from, to int) {
	if from == to {
		return
	}
	if from > to {
		from, to = to, from
	}
	for _, rec := range s.records {
		rec.Selected = rec.Index >= from && rec.Index <= to
	}
}

// sameList compares list identities. Reference kinds compare by pointer so a
// reallocated slice counts as a new list even when its contents are equal.
func sameList(a, b List) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	if va.Type().Comparable() {
		return a == b
	}
	return false
}
