package state

import (
	"math/rand"

	"campuslockdown/pkg/engine/camera"
	"campuslockdown/pkg/engine/motion"
	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/maps"
)

// Window and lighting constants for the default presentation.
const (
	WindowWidth  = 1000
	WindowHeight = 800

	// PlayerSize is the player's rendered edge length in pixels,
	// slightly smaller than a tile.
	PlayerSize = 40

	// DarknessAlpha is the opacity of the darkness overlay.
	DarknessAlpha = 200

	// FlashlightRadius is the lit radius around the player in pixels
	// when the flashlight is on; VisibilityRadius applies when it is
	// off.
	FlashlightRadius = 130
	VisibilityRadius = 1
)

// ExitAnchor remembers where on campus the player stood when entering
// a building, so leaving it puts them back at the doorstep.
type ExitAnchor struct {
	MapID string
	Cell  world.GridPoint
}

// Game is the full mutable state of a session. All fields are owned by
// the game goroutine; renderers receive the state for drawing but must
// not mutate it.
type Game struct {
	Store *maps.Store

	CurrentMap *world.Map
	MapID      string

	// Campus keeps the outdoor map alive across interior visits so
	// its items and layout persist.
	Campus *world.Map

	Player *motion.Mover
	Camera *camera.Camera

	Inventory *items.Inventory

	// Items on the current map, keyed by map id so interiors keep
	// their loot between visits.
	ItemsByMap map[string][]*items.Item

	Flashlight bool

	Anchor *ExitAnchor

	Messages []string

	Running bool

	Rand *rand.Rand
}

// NewGame builds a session on the campus map, spawning the player and
// the campus items. A missing campus map file falls back to the
// built-in map.
func NewGame(store *maps.Store, rng *rand.Rand) *Game {
	campus := store.LoadOrFallback(maps.CampusID)

	g := &Game{
		Store:      store,
		CurrentMap: campus,
		MapID:      maps.CampusID,
		Campus:     campus,
		Camera:     camera.New(WindowWidth, WindowHeight),
		Inventory:  items.NewInventory(),
		ItemsByMap: make(map[string][]*items.Item),
		Running:    true,
		Rand:       rng,
	}

	start := startCell(campus)
	g.Player = motion.NewMover(campus, start.X, start.Y)

	g.ItemsByMap[maps.CampusID] = items.Spawn(campus, rng)

	g.Camera.SnapTo(g.PlayerCenterX(), g.PlayerCenterY(), campus.PixelWidth(), campus.PixelHeight())
	return g
}

// startCell picks the player's initial cell: the declared spawn when
// walkable, otherwise the first walkable cell.
func startCell(m *world.Map) world.GridPoint {
	if s := m.Spawn(); m.IsWalkable(s.X, s.Y) {
		return s
	}
	if p, ok := m.FindWalkable(); ok {
		return p
	}
	return m.Spawn()
}

// Items returns the item list of the current map.
func (g *Game) Items() []*items.Item {
	return g.ItemsByMap[g.MapID]
}

// PlayerCenterX returns the world pixel X of the player's center. The
// player square is centered in its tile, so this is the tile center.
func (g *Game) PlayerCenterX() float64 {
	return g.Player.PixelX + world.TileSize/2
}

// PlayerCenterY returns the world pixel Y of the player's center.
func (g *Game) PlayerCenterY() float64 {
	return g.Player.PixelY + world.TileSize/2
}

// LightRadius returns the current lit radius around the player.
func (g *Game) LightRadius() float64 {
	if g.Flashlight {
		return FlashlightRadius
	}
	return VisibilityRadius
}

// AddMessage appends to the message log, keeping only the last few
// entries.
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears the message log.
func (g *Game) ClearMessages() {
	g.Messages = g.Messages[:0]
}
