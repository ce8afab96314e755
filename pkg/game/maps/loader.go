// Package maps loads, caches and watches the game's JSON map files.
package maps

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"campuslockdown/pkg/engine/world"
)

// ErrMapLoad is wrapped by failures to read or decode a map file.
// Malformed grids inside an otherwise valid file wrap
// world.ErrMapFormat instead.
var ErrMapLoad = errors.New("cannot load map")

// mapFile is the on-disk JSON representation of a map.
type mapFile struct {
	Name       string `json:"name"`
	SpawnPoint struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"spawn_point"`
	MapData []string `json:"map_data"`
}

// Load reads a map from a JSON file. The file holds the map name, a
// spawn point and the grid as rows of tile characters.
func Load(path string) (*world.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMapLoad, err)
	}

	var mf mapFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMapLoad, path, err)
	}

	types, err := world.ParseRows(mf.MapData)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", path, err)
	}

	name := mf.Name
	if name == "" {
		name = "Unnamed Map"
	}
	spawn := world.GridPoint{X: mf.SpawnPoint.X, Y: mf.SpawnPoint.Y}
	return world.NewMap(name, types, spawn)
}
