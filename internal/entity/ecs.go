// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-ironslay/internal/component"
	"go-ironslay/internal/config"
	"go-ironslay/internal/types"
	"go-ironslay/pkg/hexgrid"
	"go-ironslay/pkg/hexmath"
)

// gridMark хранит позицию сущности на момент первого изменения в текущем тике.
type gridMark struct {
	from   hexmath.AxialCoord
	placed bool
}

type ECS struct {
	NextID        types.EntityID
	GridPositions map[types.EntityID]*component.GridPosition
	Units         map[types.EntityID]*component.Unit
	Moveables     map[types.EntityID]*component.Moveable
	Selectables   map[types.EntityID]*component.Selectable
	Selected      map[types.EntityID]*component.Selected
	Renderables   map[types.EntityID]*component.Renderable
	Selection     *component.Selection
	Hover         *component.Hover

	journal map[types.EntityID]gridMark
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		GridPositions: make(map[types.EntityID]*component.GridPosition),
		Units:         make(map[types.EntityID]*component.Unit),
		Moveables:     make(map[types.EntityID]*component.Moveable),
		Selectables:   make(map[types.EntityID]*component.Selectable),
		Selected:      make(map[types.EntityID]*component.Selected),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Selection:     &component.Selection{},
		Hover:         &component.Hover{},
		journal:       make(map[types.EntityID]gridMark),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SpawnUnit создаёт юнита в клетке. Занятость клетки проверяет вызывающий.
func (ecs *ECS) SpawnUnit(cell hexmath.AxialCoord, unit component.Unit, moveable bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Units[id] = &unit
	ecs.Selectables[id] = &component.Selectable{}
	if moveable {
		ecs.Moveables[id] = &component.Moveable{}
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:     config.TeamColor(unit.Team, moveable),
		HasStroke: moveable,
	}
	ecs.Place(id, cell)
	return id
}

// Place ставит сущность в клетку и записывает изменение в журнал.
func (ecs *ECS) Place(id types.EntityID, cell hexmath.AxialCoord) {
	ecs.mark(id)
	if pos, ok := ecs.GridPositions[id]; ok {
		pos.Cell = cell
		return
	}
	ecs.GridPositions[id] = &component.GridPosition{Cell: cell}
}

// Destroy удаляет сущность со всеми компонентами.
func (ecs *ECS) Destroy(id types.EntityID) {
	ecs.mark(id)
	delete(ecs.GridPositions, id)
	delete(ecs.Units, id)
	delete(ecs.Moveables, id)
	delete(ecs.Selectables, id)
	delete(ecs.Selected, id)
	delete(ecs.Renderables, id)
}

// Restore возвращает сущность в клетку, минуя журнал. Нужен, когда
// GridStore отклонил ход и всё ещё держит сущность в этой клетке.
func (ecs *ECS) Restore(id types.EntityID, cell hexmath.AxialCoord) {
	if pos, ok := ecs.GridPositions[id]; ok {
		pos.Cell = cell
	}
}

// Discard удаляет сущность, минуя журнал: в GridStore её уже нет
// или её клетку занял другой.
func (ecs *ECS) Discard(id types.EntityID) {
	delete(ecs.journal, id)
	delete(ecs.GridPositions, id)
	delete(ecs.Units, id)
	delete(ecs.Moveables, id)
	delete(ecs.Selectables, id)
	delete(ecs.Selected, id)
	delete(ecs.Renderables, id)
}

func (ecs *ECS) mark(id types.EntityID) {
	if _, seen := ecs.journal[id]; seen {
		return
	}
	m := gridMark{}
	if pos, ok := ecs.GridPositions[id]; ok {
		m = gridMark{from: pos.Cell, placed: true}
	}
	ecs.journal[id] = m
}

// UnitAt ищет юнита в клетке по компонентам, без GridStore.
func (ecs *ECS) UnitAt(cell hexmath.AxialCoord) (types.EntityID, bool) {
	for id, pos := range ecs.GridPositions {
		if _, ok := ecs.Units[id]; ok && pos.Cell == cell {
			return id, true
		}
	}
	return 0, false
}

// DrainGridChanges сворачивает журнал тика в набор изменений для GridStore
// и очищает журнал. Для каждой сущности сравнивается позиция на начало тика
// с итоговой; записи упорядочены по ID.
func (ecs *ECS) DrainGridChanges() hexgrid.ChangeSet[types.EntityID] {
	var cs hexgrid.ChangeSet[types.EntityID]
	if len(ecs.journal) == 0 {
		return cs
	}

	ids := make([]types.EntityID, 0, len(ecs.journal))
	for id := range ecs.journal {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		m := ecs.journal[id]
		pos, exists := ecs.GridPositions[id]
		switch {
		case m.placed && exists:
			if pos.Cell != m.from {
				cs.Moved = append(cs.Moved, hexgrid.Move[types.EntityID]{Ref: id, From: m.from, To: pos.Cell})
			}
		case m.placed:
			cs.Removed = append(cs.Removed, hexgrid.Placement[types.EntityID]{Ref: id, Coord: m.from})
		case exists:
			cs.Added = append(cs.Added, hexgrid.Placement[types.EntityID]{Ref: id, Coord: pos.Cell})
		}
	}
	clear(ecs.journal)
	return cs
}
