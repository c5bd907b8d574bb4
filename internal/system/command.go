// internal/system/command.go
package system

import (
	"go-ironslay/internal/component"
	"go-ironslay/internal/entity"
	"go-ironslay/internal/event"
	"go-ironslay/internal/logging"
	"go-ironslay/internal/types"
	"go-ironslay/pkg/hexmath"
)

// OccupancyReader читает занятость клеток. Его реализует hexgrid.Store.
type OccupancyReader interface {
	At(c hexmath.AxialCoord) (types.EntityID, bool)
}

// CommandSystem выполняет команды игрока над юнитами.
// Юниты ищутся по ECS: ходы текущего тика попадут в GridStore только в конце.
// GridStore дополнительно проверяет, свободна ли клетка.
type CommandSystem struct {
	ecs             *entity.ECS
	occupancy       OccupancyReader
	eventDispatcher *event.Dispatcher
}

func NewCommandSystem(ecs *entity.ECS, occupancy OccupancyReader, eventDispatcher *event.Dispatcher) *CommandSystem {
	return &CommandSystem{ecs: ecs, occupancy: occupancy, eventDispatcher: eventDispatcher}
}

// Click обрабатывает левый клик по клетке. Если выбран подвижный юнит, а клетка пуста,
// юнит переходит в неё и выбор следует за ним. Иначе клетка становится выбранной.
func (s *CommandSystem) Click(cell hexmath.AxialCoord) {
	if id, ok := s.selectedMoveable(); ok {
		if s.isFree(cell) {
			from := s.ecs.Selection.Cell
			s.ecs.Place(id, cell)
			logging.LogDebug("unit %d moved %v -> %v", id, from, cell)
			s.selectCell(cell)
			return
		}
	}
	s.selectCell(cell)
}

// ClearSelection снимает выбор по правому клику.
func (s *CommandSystem) ClearSelection() {
	if !s.ecs.Selection.Active {
		return
	}
	s.ecs.Selection.Active = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.SelectionCleared})
}

// Spawn создаёт юнита в пустой клетке. Возвращает false, если клетка занята
// или номер команды отрицательный.
func (s *CommandSystem) Spawn(cell hexmath.AxialCoord, unit component.Unit, moveable bool) (types.EntityID, bool) {
	if unit.Team < 0 {
		logging.LogWarn("spawn rejected: team %d", unit.Team)
		return 0, false
	}
	if !s.isFree(cell) {
		return 0, false
	}
	id := s.ecs.SpawnUnit(cell, unit, moveable)
	logging.LogDebug("unit %d spawned at %v", id, cell)
	return id, true
}

// RemoveSelected удаляет юнита в выбранной клетке.
func (s *CommandSystem) RemoveSelected() (types.EntityID, bool) {
	if !s.ecs.Selection.Active {
		return 0, false
	}
	id, ok := s.ecs.UnitAt(s.ecs.Selection.Cell)
	if !ok {
		return 0, false
	}
	s.ecs.Destroy(id)
	logging.LogDebug("unit %d removed from %v", id, s.ecs.Selection.Cell)
	return id, true
}

func (s *CommandSystem) selectedMoveable() (types.EntityID, bool) {
	if !s.ecs.Selection.Active {
		return 0, false
	}
	id, ok := s.ecs.UnitAt(s.ecs.Selection.Cell)
	if !ok {
		return 0, false
	}
	if _, moveable := s.ecs.Moveables[id]; !moveable {
		return 0, false
	}
	return id, true
}

// isFree проверяет и GridStore, и ECS: изменения текущего тика
// попадут в GridStore только после GridSystem.
func (s *CommandSystem) isFree(cell hexmath.AxialCoord) bool {
	if _, occupied := s.occupancy.At(cell); occupied {
		return false
	}
	_, occupied := s.ecs.UnitAt(cell)
	return !occupied
}

func (s *CommandSystem) selectCell(cell hexmath.AxialCoord) {
	s.ecs.Selection.Cell = cell
	s.ecs.Selection.Active = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.CellSelected,
		Data: event.CellData{Cell: cell, Valid: true},
	})
}
