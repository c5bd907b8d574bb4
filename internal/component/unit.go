// component/unit.go
package component

// Unit: юнит на поле
type Unit struct {
	Team  int
	Power int
}

// Selectable: тег: юнит можно выбрать кликом
type Selectable struct{}

// Selected: тег выбранного юнита, ставится SelectionSystem
type Selected struct{}
