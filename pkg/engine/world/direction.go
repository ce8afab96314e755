package world

// Direction is a unit step on the grid. Movement is cardinal only.
type Direction struct {
	Name string
	DX   int
	DY   int
}

var (
	North = Direction{Name: "north", DX: 0, DY: -1}
	South = Direction{Name: "south", DX: 0, DY: 1}
	East  = Direction{Name: "east", DX: 1, DY: 0}
	West  = Direction{Name: "west", DX: -1, DY: 0}
)

// Directions lists the four cardinal directions in N/S/E/W order.
var Directions = []Direction{North, South, East, West}
