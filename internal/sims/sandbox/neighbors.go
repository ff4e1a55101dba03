package sandbox

import "sandfall/internal/core"

// Direction names one of the eight Moore neighbors. Top is toward larger y.
type Direction uint8

const (
	Top Direction = iota
	Bottom
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight

	directionCount
)

var directionOffsets = [directionCount][2]int{
	Top:         {0, 1},
	Bottom:      {0, -1},
	Left:        {-1, 0},
	Right:       {1, 0},
	TopLeft:     {-1, 1},
	TopRight:    {1, 1},
	BottomLeft:  {-1, -1},
	BottomRight: {1, -1},
}

var directionNames = [directionCount]string{
	Top:         "top",
	Bottom:      "bottom",
	Left:        "left",
	Right:       "right",
	TopLeft:     "topLeft",
	TopRight:    "topRight",
	BottomLeft:  "bottomLeft",
	BottomRight: "bottomRight",
}

// growthOrder visits neighbors column by column (dx = -1, 0, 1), bottom to
// top within each column. Every growth and ignition loop draws its random
// values in this order.
var growthOrder = [directionCount]Direction{
	BottomLeft, Left, TopLeft,
	Bottom, Top,
	BottomRight, Right, TopRight,
}

// Offset returns the (dx, dy) step of d.
func (d Direction) Offset() (int, int) {
	if d >= directionCount {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

// String returns the name of d.
func (d Direction) String() string {
	if d >= directionCount {
		return "invalid"
	}
	return directionNames[d]
}

// Neighborhood holds the eight neighbor slots of a coordinate. Off-grid
// directions have no slot: reads return an invalid Cell and writes are
// impossible.
type Neighborhood struct {
	slots [directionCount]*Cell
}

func resolveNeighborhood(g *core.Grid[Cell], x, y int) Neighborhood {
	var n Neighborhood
	for d := Direction(0); d < directionCount; d++ {
		dx, dy := d.Offset()
		n.slots[d] = g.At(x+dx, y+dy)
	}
	return n
}

// Valid reports whether direction d lies on the grid.
func (n *Neighborhood) Valid(d Direction) bool {
	return d < directionCount && n.slots[d] != nil
}

// At returns a copy of the neighbor in direction d. Off-grid directions yield
// a Cell with IsValid false.
func (n *Neighborhood) At(d Direction) Cell {
	if !n.Valid(d) {
		return Cell{}
	}
	return *n.slots[d]
}

// Slot returns the writable neighbor in direction d, or nil when off-grid.
func (n *Neighborhood) Slot(d Direction) *Cell {
	if !n.Valid(d) {
		return nil
	}
	return n.slots[d]
}

// IsAir reports whether direction d is on the grid and currently holds air.
func (n *Neighborhood) IsAir(d Direction) bool {
	return n.At(d).IsAir()
}
