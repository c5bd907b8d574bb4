// pkg/hexgrid/store.go
package hexgrid

import "go-ironslay/pkg/hexmath"

type slot[T comparable] struct {
	ref      T
	occupied bool
}

// Store keeps at most one occupant reference per cell. It only stores the
// association; occupants are owned by the caller. Store is not safe for
// concurrent mutation: writes happen in one phase of a tick, reads go through
// Snapshot.
type Store[T comparable] struct {
	layout Layout
	slots  []slot[T]
}

// New creates an empty width x height store.
func New[T comparable](width, height int) (*Store[T], error) {
	layout, err := NewLayout(width, height)
	if err != nil {
		return nil, err
	}
	return NewWithLayout[T](layout), nil
}

// NewWithLayout creates an empty store over an existing layout.
func NewWithLayout[T comparable](layout Layout) *Store[T] {
	return &Store[T]{layout: layout, slots: make([]slot[T], layout.Len())}
}

func (s *Store[T]) Layout() Layout { return s.layout }

// Set stores ref at c, replacing any previous occupant. The store does not
// check whether ref already occupies another cell.
func (s *Store[T]) Set(c hexmath.AxialCoord, ref T) error {
	i, err := s.layout.Index(c)
	if err != nil {
		return err
	}
	s.slots[i] = slot[T]{ref: ref, occupied: true}
	return nil
}

// Clear empties the slot at c.
func (s *Store[T]) Clear(c hexmath.AxialCoord) error {
	i, err := s.layout.Index(c)
	if err != nil {
		return err
	}
	s.slots[i] = slot[T]{}
	return nil
}

// At returns the occupant at c. Cells outside the grid read as empty.
func (s *Store[T]) At(c hexmath.AxialCoord) (T, bool) {
	i, err := s.layout.Index(c)
	if err != nil {
		var zero T
		return zero, false
	}
	return s.slots[i].ref, s.slots[i].occupied
}

// Find returns the first cell, in index order, holding ref.
func (s *Store[T]) Find(ref T) (hexmath.AxialCoord, bool) {
	for i, sl := range s.slots {
		if sl.occupied && sl.ref == ref {
			return hexmath.AxialCoord{X: i % s.layout.width, Y: i / s.layout.width}, true
		}
	}
	return hexmath.AxialCoord{}, false
}

// Count returns the number of occupied cells.
func (s *Store[T]) Count() int {
	n := 0
	for _, sl := range s.slots {
		if sl.occupied {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied cell in index order until fn returns false.
func (s *Store[T]) Each(fn func(c hexmath.AxialCoord, ref T) bool) {
	for i, sl := range s.slots {
		if !sl.occupied {
			continue
		}
		if !fn(hexmath.AxialCoord{X: i % s.layout.width, Y: i / s.layout.width}, sl.ref) {
			return
		}
	}
}

// Reset empties every slot.
func (s *Store[T]) Reset() {
	clear(s.slots)
}

// clearIf empties c only while it still holds ref.
func (s *Store[T]) clearIf(c hexmath.AxialCoord, ref T) {
	i, err := s.layout.Index(c)
	if err != nil {
		return
	}
	if s.slots[i].occupied && s.slots[i].ref == ref {
		s.slots[i] = slot[T]{}
	}
}

// Snapshot copies the current state for readers that run after the mutation
// phase (rendering, UI).
func (s *Store[T]) Snapshot() *View[T] {
	slots := make([]slot[T], len(s.slots))
	copy(slots, s.slots)
	return &View[T]{store: Store[T]{layout: s.layout, slots: slots}}
}

// View is a read-only copy of a Store.
type View[T comparable] struct {
	store Store[T]
}

func (v *View[T]) Layout() Layout                           { return v.store.layout }
func (v *View[T]) At(c hexmath.AxialCoord) (T, bool)        { return v.store.At(c) }
func (v *View[T]) Find(ref T) (hexmath.AxialCoord, bool)    { return v.store.Find(ref) }
func (v *View[T]) Count() int                               { return v.store.Count() }
func (v *View[T]) Each(fn func(hexmath.AxialCoord, T) bool) { v.store.Each(fn) }
