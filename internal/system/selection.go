// internal/system/selection.go
package system

import (
	"go-ironslay/internal/component"
	"go-ironslay/internal/entity"
)

// SelectionSystem помечает тегом Selected юнитов в выбранной клетке.
type SelectionSystem struct {
	ecs *entity.ECS
}

func NewSelectionSystem(ecs *entity.ECS) *SelectionSystem {
	return &SelectionSystem{ecs: ecs}
}

func (s *SelectionSystem) Update() {
	clear(s.ecs.Selected)
	if !s.ecs.Selection.Active {
		return
	}
	for id := range s.ecs.Selectables {
		if pos, ok := s.ecs.GridPositions[id]; ok && pos.Cell == s.ecs.Selection.Cell {
			s.ecs.Selected[id] = &component.Selected{}
		}
	}
}
