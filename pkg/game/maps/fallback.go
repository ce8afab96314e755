package maps

import "campuslockdown/pkg/engine/world"

// fallbackRows is the built-in 20x16 campus map used when the campus
// map file is missing or unreadable. One viewport's worth of terrain:
// wall border, grass, ponds, trees and a small walled building.
var fallbackRows = []string{
	"BBBBBBBBBBBBBBBBBBBB",
	"BGGGGGGGGGGGGGGGGGGB",
	"BGTGGWWWGGGTGGGGTGGB",
	"BGGGGWWWGGGGGGBBGGGB",
	"BGGGGWWWGGGGGGBBGGGB",
	"BGTGGGGGGGGGGGGGGTGB",
	"BGGGGGGGGBBBGGGGGGGB",
	"BGGGGGGGGBEBGGGGGGGB",
	"BGGGGGGGGBBBGGGGGGGB",
	"BGTGGGGGGGGGGGGGGTGB",
	"BGGGGWWWGGGGGGGGGGGB",
	"BGGGGWWWGGGGGTGGGGGB",
	"BGGGGWWWGGGGGGGGGGGB",
	"BGTGGGGGGGGGGGGGTGGB",
	"BGGGGGGGGGGGGGGGGGGB",
	"BBBBBBBBBBBBBBBBBBBB",
}

// fallbackMap builds the built-in campus map. The rows are a compile
// time constant, so construction cannot fail.
func fallbackMap() *world.Map {
	types, err := world.ParseRows(fallbackRows)
	if err != nil {
		panic("built-in map is malformed: " + err.Error())
	}
	m, err := world.NewMap("Campus (built-in)", types, world.GridPoint{X: 1, Y: 1})
	if err != nil {
		panic("built-in map is malformed: " + err.Error())
	}
	return m
}
