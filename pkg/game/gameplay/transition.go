package gameplay

import (
	"log"

	"github.com/leonelquinteros/gotext"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/maps"
	"campuslockdown/pkg/game/state"
)

// checkTransition fires the transition registered on the player's
// settled cell, if any.
func checkTransition(g *state.Game) {
	tr, ok := g.CurrentMap.TransitionAt(g.Player.GridX, g.Player.GridY)
	if !ok {
		return
	}
	if tr.ToMap == maps.CampusID {
		returnToCampus(g)
	} else {
		enterInterior(g, tr.ToMap)
	}
}

// enterInterior moves the player from campus into a building. The
// transition is atomic: when the destination map cannot be loaded the
// state is left untouched and the failure is logged.
func enterInterior(g *state.Game, id string) {
	if g.MapID != maps.CampusID {
		return
	}

	dest, err := g.Store.Get(id)
	if err != nil {
		log.Printf("transition to %q aborted: %v", id, err)
		g.AddMessage(gotext.Get("The door won't open."))
		return
	}

	// Remember the doorstep so leaving the building returns here.
	g.Anchor = &state.ExitAnchor{
		MapID: id,
		Cell:  world.GridPoint{X: g.Player.GridX, Y: g.Player.GridY},
	}

	if _, ok := g.ItemsByMap[id]; !ok {
		g.ItemsByMap[id] = items.Spawn(dest, g.Rand)
	}

	entrance := entranceCell(dest)
	switchMap(g, dest, id, entrance)
	g.AddMessage(gotext.Get("Entered %s", dest.Name()))
}

// returnToCampus moves the player from an interior back outdoors,
// preferring a cell next to the door they came in through.
func returnToCampus(g *state.Game) {
	if g.MapID == maps.CampusID {
		return
	}

	switchMap(g, g.Campus, maps.CampusID, campusExitCell(g))
	g.AddMessage(gotext.Get("Returned to campus"))
}

// switchMap performs the atomic swap: map, terrain binding, player
// teleport and camera snap all change together.
func switchMap(g *state.Game, m *world.Map, id string, cell world.GridPoint) {
	g.CurrentMap = m
	g.MapID = id
	g.Player.SetTerrain(m)
	g.Player.Teleport(cell.X, cell.Y)
	g.Camera.SnapTo(g.PlayerCenterX(), g.PlayerCenterY(), m.PixelWidth(), m.PixelHeight())
}

// entranceCell picks where the player appears inside a building: the
// declared spawn when walkable, else a cell next to a door, else the
// first walkable cell.
func entranceCell(m *world.Map) world.GridPoint {
	if s := m.Spawn(); m.IsWalkable(s.X, s.Y) {
		return s
	}
	if p, ok := m.FindAdjacentTo(world.Door); ok {
		return p
	}
	if p, ok := m.FindWalkable(); ok {
		return p
	}
	return m.Spawn()
}

// neighborOffsets orders the cells tried around the exit anchor:
// orthogonal first, then diagonal.
var neighborOffsets = [][2]int{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

// campusExitCell picks where the player reappears on campus: a
// walkable neighbor of the anchor, the anchor itself, the campus
// spawn, or any walkable cell.
func campusExitCell(g *state.Game) world.GridPoint {
	campus := g.Campus
	if g.Anchor != nil {
		a := g.Anchor.Cell
		for _, off := range neighborOffsets {
			nx, ny := a.X+off[0], a.Y+off[1]
			if campus.IsWalkable(nx, ny) {
				return world.GridPoint{X: nx, Y: ny}
			}
		}
		if campus.IsWalkable(a.X, a.Y) {
			return a
		}
	}
	if s := campus.Spawn(); campus.IsWalkable(s.X, s.Y) {
		return s
	}
	if p, ok := campus.FindWalkable(); ok {
		return p
	}
	return campus.Spawn()
}
