package maps

import (
	"fmt"
	"log"
	"path/filepath"

	"campuslockdown/pkg/engine/world"
)

// CampusID is the map id of the outdoor campus map. Interior maps
// return to it through generic Door tiles.
const CampusID = "campus"

// doorDestinations maps campus door tiles to the interior map they
// open into.
var doorDestinations = map[world.TileType]string{
	world.LibraryDoor:   "library",
	world.CafeteriaDoor: "cafeteria",
	world.DormitoryDoor: "dormitory",
	world.ParkingDoor:   "parking",
}

// Store resolves map ids to loaded maps, caching each map for the rest
// of the session. Interior maps stay cached so re-entering a building
// preserves its state. The Store is confined to the game goroutine;
// the file watcher reports changes over a channel rather than touching
// the cache itself.
type Store struct {
	dir   string
	cache map[string]*world.Map
}

// NewStore creates a store reading map files from dir. Map id "x" is
// loaded from dir/x_map.json.
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: make(map[string]*world.Map),
	}
}

// Path returns the file path backing a map id.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, id+"_map.json")
}

// Get returns the map for an id, loading and caching it on first use.
func (s *Store) Get(id string) (*world.Map, error) {
	if m, ok := s.cache[id]; ok {
		return m, nil
	}

	m, err := Load(s.Path(id))
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", id, err)
	}
	registerDoorTransitions(m, id)
	s.cache[id] = m
	return m, nil
}

// Invalidate drops a map from the cache so the next Get reloads it
// from disk. Unknown ids are ignored.
func (s *Store) Invalidate(id string) {
	delete(s.cache, id)
}

// LoadOrFallback returns the map for an id, substituting the built-in
// campus map when the file cannot be loaded. It never fails; the load
// error is logged as a diagnostic.
func (s *Store) LoadOrFallback(id string) *world.Map {
	m, err := s.Get(id)
	if err == nil {
		return m
	}

	log.Printf("using built-in map for %q: %v", id, err)
	fb := fallbackMap()
	registerDoorTransitions(fb, id)
	s.cache[id] = fb
	return fb
}

// registerDoorTransitions derives the map's transition table from its
// door tiles. Building doors lead to their interior; a generic Door on
// any non-campus map leads back to campus.
func registerDoorTransitions(m *world.Map, id string) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			tile, _ := m.TileAt(x, y)
			if dest, ok := doorDestinations[tile.Type]; ok {
				m.AddTransition(world.Transition{From: world.GridPoint{X: x, Y: y}, ToMap: dest})
				continue
			}
			if tile.Type == world.Door && id != CampusID {
				m.AddTransition(world.Transition{From: world.GridPoint{X: x, Y: y}, ToMap: CampusID})
			}
		}
	}
}
