// component/movement.go
package component

import "go-ironslay/pkg/hexmath"

// GridPosition: клетка, которую занимает сущность
type GridPosition struct {
	Cell hexmath.AxialCoord
}

// Moveable: тег: юнит можно перемещать командой игрока
type Moveable struct{}
