// Package world provides generic 2D tile-grid world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"image/color"
)

// TileSize is the edge length of one grid cell in world pixels.
const TileSize = 50

// TileType identifies the terrain/content of a single tile.
type TileType int

// Tile types. The zero value is Empty, which is also the decode
// fallback for unrecognised map characters.
const (
	Empty TileType = iota
	Grass
	Water
	Wall
	Tree
	Pathway
	Library
	Cafeteria
	Dormitory
	SportsField
	ParkingLot
	Door
	Bookshelf
	Desk
	Chair
	DiningTable
	KitchenCounter
	ServingCounter
	Bed
	Wardrobe
	Bathroom
	ParkingSpace
	DrivingLane
	Sidewalk
	LibraryDoor
	CafeteriaDoor
	DormitoryDoor
	ParkingDoor
)

// TileInfo holds the per-type metadata for a tile type. The table is
// immutable after package init; renderers branch on Type and read the
// colors, the core logic only ever reads Walkable.
type TileInfo struct {
	Name     string
	Walkable bool
	Color    color.RGBA
	Accent   color.RGBA
}

// tileInfoTable is the single lookup structure for tile metadata.
var tileInfoTable = map[TileType]TileInfo{
	Empty:          {"Empty", true, rgb(45, 45, 50), rgb(55, 55, 60)},
	Grass:          {"Grass", true, rgb(76, 175, 80), rgb(139, 195, 74)},
	Water:          {"Water", false, rgb(33, 150, 243), rgb(100, 181, 246)},
	Wall:           {"Wall", false, rgb(121, 85, 72), rgb(141, 110, 99)},
	Tree:           {"Tree", false, rgb(56, 142, 60), rgb(102, 187, 106)},
	Pathway:        {"Pathway", true, rgb(169, 169, 169), rgb(192, 192, 192)},
	Library:        {"Library", true, rgb(139, 69, 19), rgb(160, 82, 45)},
	Cafeteria:      {"Cafeteria", true, rgb(255, 140, 0), rgb(255, 165, 0)},
	Dormitory:      {"Dormitory", true, rgb(70, 130, 180), rgb(100, 149, 237)},
	SportsField:    {"Sports Field", true, rgb(34, 139, 34), rgb(50, 205, 50)},
	ParkingLot:     {"Parking Lot", true, rgb(105, 105, 105), rgb(128, 128, 128)},
	Door:           {"Door", true, rgb(139, 69, 19), rgb(160, 82, 45)},
	Bookshelf:      {"Bookshelf", false, rgb(101, 67, 33), rgb(139, 90, 43)},
	Desk:           {"Desk", true, rgb(160, 82, 45), rgb(205, 133, 63)},
	Chair:          {"Chair", true, rgb(139, 69, 19), rgb(160, 82, 45)},
	DiningTable:    {"Dining Table", true, rgb(139, 69, 19), rgb(160, 82, 45)},
	KitchenCounter: {"Kitchen Counter", false, rgb(192, 192, 192), rgb(211, 211, 211)},
	ServingCounter: {"Serving Counter", true, rgb(255, 140, 0), rgb(255, 165, 0)},
	Bed:            {"Bed", true, rgb(255, 192, 203), rgb(255, 218, 185)},
	Wardrobe:       {"Wardrobe", false, rgb(101, 67, 33), rgb(160, 82, 45)},
	Bathroom:       {"Bathroom", true, rgb(173, 216, 230), rgb(135, 206, 235)},
	ParkingSpace:   {"Parking Space", true, rgb(128, 128, 128), rgb(169, 169, 169)},
	DrivingLane:    {"Driving Lane", true, rgb(64, 64, 64), rgb(105, 105, 105)},
	Sidewalk:       {"Sidewalk", true, rgb(192, 192, 192), rgb(211, 211, 211)},
	LibraryDoor:    {"Library Door", true, rgb(139, 69, 19), rgb(160, 82, 45)},
	CafeteriaDoor:  {"Cafeteria Door", true, rgb(255, 140, 0), rgb(255, 165, 0)},
	DormitoryDoor:  {"Dormitory Door", true, rgb(70, 130, 180), rgb(100, 149, 237)},
	ParkingDoor:    {"Parking Door", true, rgb(105, 105, 105), rgb(128, 128, 128)},
}

// unknownTileColor marks tile types missing from the metadata table.
var unknownTileColor = rgb(255, 0, 255)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Info returns the metadata for the tile type. Types outside the table
// report as non-walkable with a magenta marker color.
func (t TileType) Info() TileInfo {
	if info, ok := tileInfoTable[t]; ok {
		return info
	}
	return TileInfo{Name: "Unknown", Walkable: false, Color: unknownTileColor, Accent: unknownTileColor}
}

// Walkable reports whether entities may occupy tiles of this type.
func (t TileType) Walkable() bool {
	return t.Info().Walkable
}

// String returns the display name of the tile type.
func (t TileType) String() string {
	return t.Info().Name
}

// charToType maps the single-character map-file encoding to tile
// types. Decoding is case-insensitive and unknown characters resolve
// to Empty.
var charToType = map[rune]TileType{
	'E': Empty,
	'G': Grass,
	'W': Water,
	'B': Wall,
	'T': Tree,
	'P': Pathway,
	'L': Library,
	'C': Cafeteria,
	'D': Dormitory,
	'S': SportsField,
	'R': ParkingLot,
	'O': Door,
	'F': Bookshelf,
	'K': Desk,
	'H': Chair,
	'V': ServingCounter,
	'A': Bed,
	'U': Wardrobe,
	'I': Bathroom,
	'X': ParkingSpace,
	'Y': DrivingLane,
	'Z': Sidewalk,
	'Q': LibraryDoor,
	'J': CafeteriaDoor,
	'M': DormitoryDoor,
	'N': ParkingDoor,
}

// TypeForChar converts a map-file character to a tile type.
// Unrecognised characters decode to Empty rather than erroring, so a
// map with stray characters still loads.
func TypeForChar(c rune) TileType {
	if c >= 'a' && c <= 'z' {
		c = c - 'a' + 'A'
	}
	if t, ok := charToType[c]; ok {
		return t
	}
	return Empty
}

// Tile is a single cell of a map. Tiles are immutable once constructed.
type Tile struct {
	Type  TileType
	GridX int
	GridY int
}

// NewTile creates a tile of the given type at a grid position.
func NewTile(t TileType, x, y int) Tile {
	return Tile{Type: t, GridX: x, GridY: y}
}

// PixelX returns the tile's world-space pixel X (top-left corner).
func (t Tile) PixelX() float64 {
	return float64(t.GridX * TileSize)
}

// PixelY returns the tile's world-space pixel Y (top-left corner).
func (t Tile) PixelY() float64 {
	return float64(t.GridY * TileSize)
}

// Walkable reports whether entities may occupy this tile.
func (t Tile) Walkable() bool {
	return t.Type.Walkable()
}
