package items

import (
	"math"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"campuslockdown/pkg/engine/world"
)

// minSpawnDistance keeps items out of the player's immediate view at
// game start (Euclidean, in cells).
const minSpawnDistance = 3.0

// spawnCount is the random range of items placed per type.
var spawnCount = map[Type]struct{ min, max int }{
	Potion: {8, 12},
	Scroll: {5, 8},
	Key:    {3, 5},
}

// Spawn scatters items across the map's walkable cells. Each item gets
// its own cell, and nothing spawns within minSpawnDistance of the
// spawn point. Maps with fewer free cells than items get as many as
// fit.
func Spawn(m *world.Map, rng *rand.Rand) []*Item {
	spawn := m.Spawn()
	var free []world.GridPoint
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.IsWalkable(x, y) {
				continue
			}
			dx := float64(x - spawn.X)
			dy := float64(y - spawn.Y)
			if math.Sqrt(dx*dx+dy*dy) > minSpawnDistance {
				free = append(free, world.GridPoint{X: x, Y: y})
			}
		}
	}

	occupied := mapset.New[world.GridPoint]()
	var out []*Item
	for _, t := range Types {
		r := spawnCount[t]
		n := r.min + rng.Intn(r.max-r.min+1)
		for placed := 0; placed < n && occupied.Size() < len(free); {
			p := free[rng.Intn(len(free))]
			if occupied.Has(p) {
				continue
			}
			occupied.Put(p)
			out = append(out, New(t, p.X, p.Y))
			placed++
		}
	}
	return out
}
