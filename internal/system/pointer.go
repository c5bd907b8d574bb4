// internal/system/pointer.go
package system

import (
	"go-ironslay/internal/entity"
	"go-ironslay/internal/event"
	"go-ironslay/pkg/hexgrid"
	"go-ironslay/pkg/hexmath"
)

// PointerSystem переводит позицию курсора в клетку под ним.
type PointerSystem struct {
	ecs             *entity.ECS
	projection      hexmath.Projection
	layout          hexgrid.Layout
	eventDispatcher *event.Dispatcher
}

func NewPointerSystem(ecs *entity.ECS, projection hexmath.Projection, layout hexgrid.Layout, eventDispatcher *event.Dispatcher) *PointerSystem {
	return &PointerSystem{ecs: ecs, projection: projection, layout: layout, eventDispatcher: eventDispatcher}
}

// Update обновляет ecs.Hover. CellHovered отправляется только при смене клетки
// или при входе/выходе курсора с сетки.
func (s *PointerSystem) Update(x, y float64, cursorValid bool) {
	prev := *s.ecs.Hover
	next := prev
	next.Valid = false
	if cursorValid {
		cell := s.projection.CellAt(x, y)
		if s.layout.Contains(cell) {
			next.Cell, next.Valid = cell, true
		}
	}
	*s.ecs.Hover = next

	if next.Valid != prev.Valid || (next.Valid && next.Cell != prev.Cell) {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CellHovered,
			Data: event.CellData{Cell: next.Cell, Valid: next.Valid},
		})
	}
}
