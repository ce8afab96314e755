package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"campuslockdown/pkg/game/state"
)

// Update advances the game by one tick. The order is fixed: motion
// first so the player's cell settles, then item animation and
// collection on the settled cell, then door transitions, and the
// camera last so it always tracks the final position.
func Update(g *state.Game, dt float64) {
	g.Player.Update(dt)

	for _, item := range g.Items() {
		item.Update(dt)
	}

	if g.Player.Settled() {
		collectItems(g)
		checkTransition(g)
	}

	m := g.CurrentMap
	g.Camera.FollowTarget(g.PlayerCenterX(), g.PlayerCenterY(), m.PixelWidth(), m.PixelHeight(), dt)
}

// collectItems picks up any uncollected item on the player's cell.
func collectItems(g *state.Game) {
	for _, item := range g.Items() {
		if item.Collected || item.GridX != g.Player.GridX || item.GridY != g.Player.GridY {
			continue
		}
		if !g.Inventory.Add(item) {
			g.AddMessage(gotext.Get("Inventory is full!"))
			continue
		}
		item.Collected = true
		g.AddMessage(gotext.Get("Collected %s! (%d total)", item.Type.Info().Name, g.Inventory.Count(item.Type)))
	}
}
