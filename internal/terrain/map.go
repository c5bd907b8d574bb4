// internal/terrain/map.go
package terrain

import (
	"go-ironslay/internal/component"
	"go-ironslay/pkg/hexgrid"
	"go-ironslay/pkg/hexmath"
)

// Map: плотная карта типов клеток поверх того же Layout, что и GridStore.
type Map struct {
	layout  hexgrid.Layout
	cells   []component.TerrainType
	version uint64
}

// NewMap создаёт карту, целиком заполненную сушей.
func NewMap(layout hexgrid.Layout) *Map {
	return &Map{layout: layout, cells: make([]component.TerrainType, layout.Len())}
}

func (m *Map) Layout() hexgrid.Layout { return m.layout }

// Version растёт при каждом изменении; рендер по нему пересобирает картинку карты.
func (m *Map) Version() uint64 { return m.version }

// At возвращает тип клетки; вне сетки возвращает (Water, false).
func (m *Map) At(c hexmath.AxialCoord) (component.TerrainType, bool) {
	i, err := m.layout.Index(c)
	if err != nil {
		return component.Water, false
	}
	return m.cells[i], true
}

func (m *Map) Set(c hexmath.AxialCoord, t component.TerrainType) error {
	i, err := m.layout.Index(c)
	if err != nil {
		return err
	}
	if m.cells[i] != t {
		m.cells[i] = t
		m.version++
	}
	return nil
}

// Buffer возвращает состояние карты в порядке индексов: Land=0, Water=1.
func (m *Map) Buffer() []uint32 {
	buf := make([]uint32, len(m.cells))
	for i, t := range m.cells {
		buf[i] = uint32(t)
	}
	return buf
}

// Count возвращает число клеток типа t.
func (m *Map) Count(t component.TerrainType) int {
	n := 0
	for _, c := range m.cells {
		if c == t {
			n++
		}
	}
	return n
}
