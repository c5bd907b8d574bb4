// internal/app/frame.go
package app

import (
	"image/color"

	"go-ironslay/internal/component"
	"go-ironslay/internal/terrain"
	"go-ironslay/internal/types"
	"go-ironslay/pkg/hexgrid"
	"go-ironslay/pkg/hexmath"
)

// UnitView: то, что рендеру и UI нужно знать о юните.
type UnitView struct {
	Team      int
	Power     int
	Color     color.RGBA
	HasStroke bool
	Moveable  bool
	Selected  bool
}

// Frame: неизменяемый снимок мира после тика. Draw читает только его.
type Frame struct {
	Tick       uint64
	Units      *hexgrid.View[types.EntityID]
	UnitInfo   map[types.EntityID]UnitView
	Terrain    *terrain.Map // после генерации не меняется
	Projection hexmath.Projection
	Hover      component.Hover
	Selection  component.Selection
}

// Occupant возвращает юнита в клетке вместе с его данными.
func (f *Frame) Occupant(c hexmath.AxialCoord) (types.EntityID, UnitView, bool) {
	id, ok := f.Units.At(c)
	if !ok {
		return 0, UnitView{}, false
	}
	return id, f.UnitInfo[id], true
}

func (g *Game) publish() {
	info := make(map[types.EntityID]UnitView, len(g.ECS.Units))
	for id, u := range g.ECS.Units {
		v := UnitView{Team: u.Team, Power: u.Power}
		if r, ok := g.ECS.Renderables[id]; ok {
			v.Color, v.HasStroke = r.Color, r.HasStroke
		}
		_, v.Moveable = g.ECS.Moveables[id]
		_, v.Selected = g.ECS.Selected[id]
		info[id] = v
	}
	g.frame = &Frame{
		Tick:       g.tick,
		Units:      g.Grid.Snapshot(),
		UnitInfo:   info,
		Terrain:    g.Terrain,
		Projection: g.Projection,
		Hover:      *g.ECS.Hover,
		Selection:  *g.ECS.Selection,
	}
}
