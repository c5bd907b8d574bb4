// component/game_state.go
package component

import "go-ironslay/pkg/hexmath"

// Selection: текущая выбранная клетка
type Selection struct {
	Cell   hexmath.AxialCoord
	Active bool
}

// Hover: клетка под курсором
type Hover struct {
	Cell  hexmath.AxialCoord
	Valid bool // курсор над сеткой
}
