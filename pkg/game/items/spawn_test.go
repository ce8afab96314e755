package items

import (
	"math"
	"math/rand"
	"testing"

	"campuslockdown/pkg/engine/world"
)

func openMap(t *testing.T, w, h int, spawn world.GridPoint) *world.Map {
	t.Helper()
	rows := make([][]world.TileType, h)
	for y := range rows {
		rows[y] = make([]world.TileType, w)
		for x := range rows[y] {
			rows[y][x] = world.Grass
		}
	}
	m, err := world.NewMap("open", rows, spawn)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return m
}

func TestSpawnCountsAndPlacement(t *testing.T) {
	m := openMap(t, 20, 16, world.GridPoint{X: 10, Y: 8})
	rng := rand.New(rand.NewSource(1))

	spawned := Spawn(m, rng)

	counts := make(map[Type]int)
	seen := make(map[world.GridPoint]bool)
	for _, item := range spawned {
		counts[item.Type]++

		p := world.GridPoint{X: item.GridX, Y: item.GridY}
		if seen[p] {
			t.Errorf("two items on cell %v", p)
		}
		seen[p] = true

		if !m.IsWalkable(item.GridX, item.GridY) {
			t.Errorf("item on non-walkable cell %v", p)
		}
		dx := float64(item.GridX - 10)
		dy := float64(item.GridY - 8)
		if math.Sqrt(dx*dx+dy*dy) <= minSpawnDistance {
			t.Errorf("item at %v too close to spawn", p)
		}
	}

	checks := []struct {
		typ      Type
		min, max int
	}{
		{Potion, 8, 12},
		{Scroll, 5, 8},
		{Key, 3, 5},
	}
	for _, c := range checks {
		if n := counts[c.typ]; n < c.min || n > c.max {
			t.Errorf("%v count = %d, want %d..%d", c.typ, n, c.min, c.max)
		}
	}
}

func TestSpawnOnCrampedMap(t *testing.T) {
	// Only a handful of cells far enough from spawn: Spawn must not
	// loop forever or double-place.
	m := openMap(t, 6, 1, world.GridPoint{X: 0, Y: 0})
	rng := rand.New(rand.NewSource(7))

	spawned := Spawn(m, rng)

	// Cells (4,0) and (5,0) are the only ones past the distance gate.
	if len(spawned) > 2 {
		t.Errorf("spawned %d items on a map with 2 free cells", len(spawned))
	}
	seen := make(map[world.GridPoint]bool)
	for _, item := range spawned {
		p := world.GridPoint{X: item.GridX, Y: item.GridY}
		if seen[p] {
			t.Errorf("two items on cell %v", p)
		}
		seen[p] = true
	}
}
