package world

import (
	"errors"
	"fmt"
)

// ErrMapFormat is wrapped by all map construction failures so callers
// can recognise malformed map data with errors.Is.
var ErrMapFormat = errors.New("malformed map data")

// GridPoint is an integer grid coordinate.
type GridPoint struct {
	X int
	Y int
}

// Transition links a grid cell to another map. Standing still on From
// triggers a switch to the map named ToMap.
type Transition struct {
	From  GridPoint
	ToMap string
}

// Map is a rectangular tile grid with a spawn point and a table of
// cell-triggered transitions. Maps are immutable after construction
// except for AddTransition, which is only called during setup.
type Map struct {
	name        string
	width       int
	height      int
	tiles       [][]Tile
	spawn       GridPoint
	transitions map[GridPoint]Transition
}

// NewMap builds a map from a rectangular grid of tile types. Empty
// grids and ragged rows are rejected.
func NewMap(name string, rows [][]TileType, spawn GridPoint) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: map %q has no tiles", ErrMapFormat, name)
	}

	width := len(rows[0])
	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: map %q row %d has %d tiles, want %d", ErrMapFormat, name, y, len(row), width)
		}
		tiles[y] = make([]Tile, width)
		for x, tt := range row {
			tiles[y][x] = NewTile(tt, x, y)
		}
	}

	return &Map{
		name:        name,
		width:       width,
		height:      len(rows),
		tiles:       tiles,
		spawn:       spawn,
		transitions: make(map[GridPoint]Transition),
	}, nil
}

// ParseRows decodes string rows of map characters into tile types.
// All rows must be the same length.
func ParseRows(rows []string) ([][]TileType, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMapFormat)
	}

	out := make([][]TileType, len(rows))
	width := -1
	for y, row := range rows {
		chars := []rune(row)
		if width == -1 {
			width = len(chars)
		} else if len(chars) != width {
			return nil, fmt.Errorf("%w: row %d has %d characters, want %d", ErrMapFormat, y, len(chars), width)
		}
		out[y] = make([]TileType, len(chars))
		for x, c := range chars {
			out[y][x] = TypeForChar(c)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("%w: rows are empty", ErrMapFormat)
	}

	return out, nil
}

// Name returns the map's display name.
func (m *Map) Name() string { return m.name }

// Width returns the map width in tiles.
func (m *Map) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *Map) Height() int { return m.height }

// PixelWidth returns the map width in world pixels.
func (m *Map) PixelWidth() float64 { return float64(m.width * TileSize) }

// PixelHeight returns the map height in world pixels.
func (m *Map) PixelHeight() float64 { return float64(m.height * TileSize) }

// Spawn returns the declared spawn point. It is not guaranteed to be
// walkable; callers that place entities must verify.
func (m *Map) Spawn() GridPoint { return m.spawn }

// TileAt returns the tile at a grid position, reporting false when the
// position is out of bounds.
func (m *Map) TileAt(x, y int) (Tile, bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return Tile{}, false
	}
	return m.tiles[y][x], true
}

// IsWalkable reports whether the grid position is in bounds and holds a
// walkable tile.
func (m *Map) IsWalkable(x, y int) bool {
	tile, ok := m.TileAt(x, y)
	return ok && tile.Walkable()
}

// GridToPixel converts a grid coordinate to the world-space pixel
// position of the tile's top-left corner.
func (m *Map) GridToPixel(gx, gy int) (float64, float64) {
	return float64(gx * TileSize), float64(gy * TileSize)
}

// PixelToGrid converts a world-space pixel position to the grid cell
// containing it. Negative pixels floor toward negative infinity so the
// inverse stays consistent at the map edge.
func (m *Map) PixelToGrid(px, py float64) (int, int) {
	return floorDiv(px, TileSize), floorDiv(py, TileSize)
}

func floorDiv(v float64, size int) int {
	q := int(v) / size
	if v < 0 && float64(q*size) != v {
		q--
	}
	return q
}

// AddTransition registers a cell-triggered transition. A later call for
// the same cell replaces the earlier one.
func (m *Map) AddTransition(t Transition) {
	m.transitions[t.From] = t
}

// TransitionAt returns the transition registered at a grid cell, if any.
func (m *Map) TransitionAt(x, y int) (Transition, bool) {
	t, ok := m.transitions[GridPoint{X: x, Y: y}]
	return t, ok
}

// FindWalkable returns the first walkable cell in row-major order,
// reporting false when the map has none.
func (m *Map) FindWalkable() (GridPoint, bool) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.tiles[y][x].Walkable() {
				return GridPoint{X: x, Y: y}, true
			}
		}
	}
	return GridPoint{}, false
}

// FindAdjacentTo returns a walkable cell orthogonally adjacent to the
// first tile of the given type, reporting false when no such cell
// exists.
func (m *Map) FindAdjacentTo(tt TileType) (GridPoint, bool) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.tiles[y][x].Type != tt {
				continue
			}
			for _, d := range Directions {
				nx, ny := x+d.DX, y+d.DY
				if m.IsWalkable(nx, ny) {
					return GridPoint{X: nx, Y: ny}, true
				}
			}
		}
	}
	return GridPoint{}, false
}
