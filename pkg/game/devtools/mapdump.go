// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile type.
func tileSymbol(t world.TileType) rune {
	switch t {
	case world.Wall, world.Bookshelf, world.KitchenCounter, world.Wardrobe:
		return '#'
	case world.Water:
		return '~'
	case world.Tree:
		return 'T'
	case world.Pathway, world.Sidewalk:
		return ':'
	case world.Door:
		return '+'
	case world.LibraryDoor, world.CafeteriaDoor, world.DormitoryDoor, world.ParkingDoor:
		return 'D'
	default:
		return '.'
	}
}

// writeMapGrid writes the current map to f with player and item overlay.
func writeMapGrid(f *os.File, g *state.Game) {
	itemAt := make(map[world.GridPoint]bool)
	for _, item := range g.Items() {
		if !item.Collected {
			itemAt[world.GridPoint{X: item.GridX, Y: item.GridY}] = true
		}
	}

	m := g.CurrentMap
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if x == g.Player.GridX && y == g.Player.GridY {
				fmt.Fprint(f, "@")
				continue
			}
			if itemAt[world.GridPoint{X: x, Y: y}] {
				fmt.Fprint(f, "i")
				continue
			}
			tile, _ := m.TileAt(x, y)
			fmt.Fprintf(f, "%c", tileSymbol(tile.Type))
		}
		fmt.Fprintln(f)
	}
}

// DumpMapToFile writes a debug dump of the current map to map.txt:
// metadata, legend, the grid, transitions and item positions. Format
// is human- and LLM-readable (sections, key: value lines).
func DumpMapToFile(g *state.Game) (string, error) {
	if g.CurrentMap == nil {
		return "", fmt.Errorf("no map")
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m := g.CurrentMap

	fmt.Fprintln(f, "=== MAP DUMP DEBUG (layout, transitions, items) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "map_id: %s\n", g.MapID)
	fmt.Fprintf(f, "map_name: %s\n", m.Name())
	fmt.Fprintf(f, "width: %d\n", m.Width())
	fmt.Fprintf(f, "height: %d\n", m.Height())
	fmt.Fprintf(f, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(f, "spawn: %d,%d\n", m.Spawn().X, m.Spawn().Y)
	fmt.Fprintf(f, "player: %d,%d\n", g.Player.GridX, g.Player.GridY)
	fmt.Fprintf(f, "flashlight: %v\n", g.Flashlight)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend (tile symbols) ---")
	fmt.Fprintln(f, ". = walkable  # = blocked  ~ = water  T = tree  : = path  D = building door  + = exit door  i = item  @ = player")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map ---")
	writeMapGrid(f, g)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Transitions:")
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if tr, ok := m.TransitionAt(x, y); ok {
				fmt.Fprintf(f, "  x: %d y: %d to_map: %q\n", x, y, tr.ToMap)
			}
		}
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Items on map:")
	for _, item := range g.Items() {
		fmt.Fprintf(f, "  x: %d y: %d type: %q collected: %v\n", item.GridX, item.GridY, item.Type.Info().Name, item.Collected)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Inventory:")
	for _, t := range items.Types {
		if n := g.Inventory.Count(t); n > 0 {
			fmt.Fprintf(f, "  item_name: %q count: %d\n", t.Info().Name, n)
		}
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END MAP DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
