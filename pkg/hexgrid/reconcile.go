// pkg/hexgrid/reconcile.go
package hexgrid

import (
	"errors"
	"fmt"

	"go-ironslay/pkg/hexmath"
)

// Placement is an occupant at a cell.
type Placement[T comparable] struct {
	Ref   T
	Coord hexmath.AxialCoord
}

// Move is an occupant that changed cell during the tick.
type Move[T comparable] struct {
	Ref      T
	From, To hexmath.AxialCoord
}

// ChangeSet is one tick's worth of occupant lifecycle changes.
type ChangeSet[T comparable] struct {
	Added   []Placement[T]
	Moved   []Move[T]
	Removed []Placement[T] // Coord is the last known cell
}

// Empty reports whether the set carries no changes.
func (cs ChangeSet[T]) Empty() bool {
	return len(cs.Added) == 0 && len(cs.Moved) == 0 && len(cs.Removed) == 0
}

// Reconcile applies a tick's changes. The batch is validated first: if any
// coordinate is outside the grid nothing is written and the returned error
// matches ErrOutOfBounds.
//
// Removals and the source side of moves only clear a slot that still holds
// the same reference, so a cell vacated and reoccupied within the tick keeps
// its new occupant. Vacated cells never keep stale references.
func (s *Store[T]) Reconcile(cs ChangeSet[T]) error {
	if err := s.validate(cs); err != nil {
		return err
	}

	for _, r := range cs.Removed {
		s.clearIf(r.Coord, r.Ref)
	}
	for _, m := range cs.Moved {
		s.clearIf(m.From, m.Ref)
	}
	for _, m := range cs.Moved {
		i, _ := s.layout.Index(m.To)
		s.slots[i] = slot[T]{ref: m.Ref, occupied: true}
	}
	for _, a := range cs.Added {
		i, _ := s.layout.Index(a.Coord)
		s.slots[i] = slot[T]{ref: a.Ref, occupied: true}
	}
	return nil
}

func (s *Store[T]) validate(cs ChangeSet[T]) error {
	var errs []error
	for _, a := range cs.Added {
		if err := s.layout.Check(a.Coord); err != nil {
			errs = append(errs, fmt.Errorf("add %v: %w", a.Ref, err))
		}
	}
	for _, m := range cs.Moved {
		if err := s.layout.Check(m.From); err != nil {
			errs = append(errs, fmt.Errorf("move %v from: %w", m.Ref, err))
		}
		if err := s.layout.Check(m.To); err != nil {
			errs = append(errs, fmt.Errorf("move %v to: %w", m.Ref, err))
		}
	}
	for _, r := range cs.Removed {
		if err := s.layout.Check(r.Coord); err != nil {
			errs = append(errs, fmt.Errorf("remove %v: %w", r.Ref, err))
		}
	}
	return errors.Join(errs...)
}

// Partition splits cs into the entries whose coordinates are all on the grid
// and the rest. Reconcile(valid) never fails; callers use it to salvage the
// in-bounds part of a rejected batch.
func (s *Store[T]) Partition(cs ChangeSet[T]) (valid, rejected ChangeSet[T]) {
	for _, a := range cs.Added {
		if s.layout.Contains(a.Coord) {
			valid.Added = append(valid.Added, a)
		} else {
			rejected.Added = append(rejected.Added, a)
		}
	}
	for _, m := range cs.Moved {
		if s.layout.Contains(m.From) && s.layout.Contains(m.To) {
			valid.Moved = append(valid.Moved, m)
		} else {
			rejected.Moved = append(rejected.Moved, m)
		}
	}
	for _, r := range cs.Removed {
		if s.layout.Contains(r.Coord) {
			valid.Removed = append(valid.Removed, r)
		} else {
			rejected.Removed = append(rejected.Removed, r)
		}
	}
	return valid, rejected
}
