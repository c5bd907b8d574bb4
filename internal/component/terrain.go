// component/terrain.go
package component

// TerrainType: тип клетки карты. Значения совпадают с буфером состояния карты.
type TerrainType uint8

const (
	Land TerrainType = iota
	Water
)

func (t TerrainType) String() string {
	switch t {
	case Land:
		return "Land"
	case Water:
		return "Water"
	default:
		return "Unknown"
	}
}
