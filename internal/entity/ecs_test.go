package entity

import (
	"testing"

	"go-ironslay/internal/component"
	"go-ironslay/internal/config"
	"go-ironslay/internal/types"
	"go-ironslay/pkg/hexgrid"
	"go-ironslay/pkg/hexmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(x, y int) hexmath.AxialCoord { return hexmath.AxialCoord{X: x, Y: y} }

func TestNewEntityIDsStartAtOne(t *testing.T) {
	ecs := NewECS()
	assert.Equal(t, types.EntityID(1), ecs.NewEntity())
	assert.Equal(t, types.EntityID(2), ecs.NewEntity())
}

func TestSpawnUnitComponents(t *testing.T) {
	ecs := NewECS()
	id := ecs.SpawnUnit(cell(2, 3), component.Unit{Team: 1, Power: 4}, true)

	require.Contains(t, ecs.GridPositions, id)
	assert.Equal(t, cell(2, 3), ecs.GridPositions[id].Cell)
	assert.Equal(t, 4, ecs.Units[id].Power)
	assert.Contains(t, ecs.Moveables, id)
	assert.Contains(t, ecs.Selectables, id)
	assert.Contains(t, ecs.Renderables, id)

	fixed := ecs.SpawnUnit(cell(0, 0), component.Unit{}, false)
	assert.NotContains(t, ecs.Moveables, fixed)

	found, ok := ecs.UnitAt(cell(2, 3))
	assert.True(t, ok)
	assert.Equal(t, id, found)
	_, ok = ecs.UnitAt(cell(5, 5))
	assert.False(t, ok)
}

func TestDrainGridChangesCoalesces(t *testing.T) {
	ecs := NewECS()
	a := ecs.SpawnUnit(cell(1, 1), component.Unit{}, true)
	b := ecs.SpawnUnit(cell(2, 2), component.Unit{}, true)
	c := ecs.SpawnUnit(cell(3, 3), component.Unit{}, true)

	first := ecs.DrainGridChanges()
	assert.Equal(t, []hexgrid.Placement[types.EntityID]{
		{Ref: a, Coord: cell(1, 1)},
		{Ref: b, Coord: cell(2, 2)},
		{Ref: c, Coord: cell(3, 3)},
	}, first.Added)
	assert.Empty(t, first.Moved)
	assert.Empty(t, first.Removed)

	// Несколько шагов за тик дают один Move от исходной клетки.
	ecs.Place(a, cell(1, 2))
	ecs.Place(a, cell(1, 3))
	// Ушёл и вернулся: изменений нет.
	ecs.Place(b, cell(0, 0))
	ecs.Place(b, cell(2, 2))
	ecs.Place(c, cell(4, 4))
	ecs.Destroy(c)
	// Создан и удалён в одном тике.
	d := ecs.SpawnUnit(cell(5, 5), component.Unit{}, false)
	ecs.Destroy(d)

	second := ecs.DrainGridChanges()
	assert.Empty(t, second.Added)
	assert.Equal(t, []hexgrid.Move[types.EntityID]{{Ref: a, From: cell(1, 1), To: cell(1, 3)}}, second.Moved)
	assert.Equal(t, []hexgrid.Placement[types.EntityID]{{Ref: c, Coord: cell(3, 3)}}, second.Removed)

	assert.True(t, ecs.DrainGridChanges().Empty())
}

func TestDestroyRemovesAllComponents(t *testing.T) {
	ecs := NewECS()
	id := ecs.SpawnUnit(cell(0, 1), component.Unit{}, true)
	ecs.Selected[id] = &component.Selected{}

	ecs.Destroy(id)

	assert.NotContains(t, ecs.GridPositions, id)
	assert.NotContains(t, ecs.Units, id)
	assert.NotContains(t, ecs.Moveables, id)
	assert.NotContains(t, ecs.Selectables, id)
	assert.NotContains(t, ecs.Selected, id)
	assert.NotContains(t, ecs.Renderables, id)
}

func TestSpawnUnitNormalisesTeamColor(t *testing.T) {
	ecs := NewECS()
	var id types.EntityID
	require.NotPanics(t, func() {
		id = ecs.SpawnUnit(cell(1, 1), component.Unit{Team: -1}, true)
	})
	assert.Equal(t, config.TeamColors[len(config.TeamColors)-1], ecs.Renderables[id].Color)

	fixed := ecs.SpawnUnit(cell(2, 2), component.Unit{Team: 0}, false)
	assert.Equal(t, config.TeamColor(0, false), ecs.Renderables[fixed].Color)
	assert.False(t, ecs.Renderables[fixed].HasStroke)
}

func TestRestoreAndDiscardBypassJournal(t *testing.T) {
	ecs := NewECS()
	a := ecs.SpawnUnit(cell(1, 1), component.Unit{}, true)
	b := ecs.SpawnUnit(cell(2, 2), component.Unit{}, true)
	ecs.DrainGridChanges()

	ecs.Place(a, cell(9, 9))
	ecs.Restore(a, cell(1, 1))
	assert.Equal(t, cell(1, 1), ecs.GridPositions[a].Cell)

	ecs.Place(b, cell(3, 3))
	ecs.Discard(b)
	assert.NotContains(t, ecs.GridPositions, b)
	assert.NotContains(t, ecs.Units, b)
	assert.NotContains(t, ecs.Renderables, b)

	// Ход a свёлся к нулю, b выброшен вместе с записью журнала.
	assert.True(t, ecs.DrainGridChanges().Empty())
}
