// internal/event/types.go
package event

import (
	"go-ironslay/internal/types"
	"go-ironslay/pkg/hexmath"
)

const (
	CellHovered      EventType = "CellHovered"      // курсор перешёл на другую клетку
	CellSelected     EventType = "CellSelected"     // выбрана клетка
	SelectionCleared EventType = "SelectionCleared" // выбор снят
	OccupantAdded    EventType = "OccupantAdded"
	OccupantMoved    EventType = "OccupantMoved"
	OccupantRemoved  EventType = "OccupantRemoved"
	GridRejected     EventType = "GridRejected" // пакет изменений не применён
)

// CellData: данные для CellHovered и CellSelected.
type CellData struct {
	Cell  hexmath.AxialCoord
	Valid bool // false, если курсор ушёл с сетки
}

// OccupantData: данные для событий OccupantAdded/Moved/Removed.
// Для Added и Removed From == To.
type OccupantData struct {
	Entity   types.EntityID
	From, To hexmath.AxialCoord
}

// GridRejectedData: данные для GridRejected.
type GridRejectedData struct {
	Err error
}
