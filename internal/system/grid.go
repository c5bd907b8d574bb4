// internal/system/grid.go
package system

import (
	"errors"

	"go-ironslay/internal/entity"
	"go-ironslay/internal/event"
	"go-ironslay/internal/logging"
	"go-ironslay/internal/types"
	"go-ironslay/pkg/hexgrid"
)

// GridSystem переносит изменения позиций из журнала ECS в GridStore.
// Выполняется последней фазой тика, после всех систем, двигающих юнитов.
type GridSystem struct {
	ecs             *entity.ECS
	store           *hexgrid.Store[types.EntityID]
	eventDispatcher *event.Dispatcher
}

func NewGridSystem(ecs *entity.ECS, store *hexgrid.Store[types.EntityID], eventDispatcher *event.Dispatcher) *GridSystem {
	return &GridSystem{ecs: ecs, store: store, eventDispatcher: eventDispatcher}
}

// Update применяет изменения тика. Если пакет отклонён, ошибка логируется
// и уходит событием GridRejected. Записи за пределами сетки откатываются в ECS,
// остальные применяются, так что ECS и GridStore снова совпадают.
func (s *GridSystem) Update() error {
	cs := s.ecs.DrainGridChanges()
	if cs.Empty() {
		return nil
	}
	err := s.store.Reconcile(cs)
	if err == nil {
		s.announce(cs)
		return nil
	}

	logging.LogError("grid reconcile rejected: %v", err)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GridRejected, Data: event.GridRejectedData{Err: err}})

	valid, rejected := s.store.Partition(cs)
	s.rollback(rejected)
	if rerr := s.store.Reconcile(valid); rerr != nil {
		return errors.Join(err, rerr)
	}
	s.announce(valid)
	return err
}

// rollback приводит ECS к тому, что хранит GridStore, для отклонённых записей.
func (s *GridSystem) rollback(rejected hexgrid.ChangeSet[types.EntityID]) {
	// В GridStore юнит не попал: его нет и в мире.
	for _, a := range rejected.Added {
		s.ecs.Discard(a.Ref)
		logging.LogWarn("unit %d discarded: spawn cell %v outside grid", a.Ref, a.Coord)
	}
	for _, m := range rejected.Moved {
		layout := s.store.Layout()
		if !layout.Contains(m.From) {
			s.ecs.Discard(m.Ref)
			logging.LogWarn("unit %d discarded: cell %v outside grid", m.Ref, m.From)
			continue
		}
		// Клетку-источник мог занять другой юнит в этом же тике.
		if other, taken := s.ecs.UnitAt(m.From); taken && other != m.Ref {
			// Его ход в valid перезапишет клетку в GridStore.
			s.ecs.Discard(m.Ref)
			s.dispatch(event.OccupantRemoved, event.OccupantData{Entity: m.Ref, From: m.From, To: m.From})
			logging.LogWarn("unit %d discarded: move to %v rejected, %v taken by %d", m.Ref, m.To, m.From, other)
			continue
		}
		s.ecs.Restore(m.Ref, m.From)
		logging.LogWarn("unit %d kept at %v: move to %v rejected", m.Ref, m.From, m.To)
	}
	// Удалённой сущности уже нет в ECS, а в GridStore вне сетки нечего чистить.
}

func (s *GridSystem) announce(cs hexgrid.ChangeSet[types.EntityID]) {
	for _, r := range cs.Removed {
		s.dispatch(event.OccupantRemoved, event.OccupantData{Entity: r.Ref, From: r.Coord, To: r.Coord})
	}
	for _, m := range cs.Moved {
		s.dispatch(event.OccupantMoved, event.OccupantData{Entity: m.Ref, From: m.From, To: m.To})
	}
	for _, a := range cs.Added {
		s.dispatch(event.OccupantAdded, event.OccupantData{Entity: a.Ref, From: a.Coord, To: a.Coord})
	}
}

func (s *GridSystem) dispatch(t event.EventType, data event.OccupantData) {
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}
