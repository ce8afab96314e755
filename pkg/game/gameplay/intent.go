// Package gameplay contains the game rules: input handling, the
// per-tick update, item collection and map transitions.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/game/state"
)

// ProcessIntent applies one player intent to the game state. Movement
// intents are silently ignored when the player is mid-step or the
// destination is blocked.
func ProcessIntent(g *state.Game, intent input.Intent) {
	switch intent.Action {
	case input.ActionMoveNorth:
		g.Player.Move(0, -1)
	case input.ActionMoveSouth:
		g.Player.Move(0, 1)
	case input.ActionMoveWest:
		g.Player.Move(-1, 0)
	case input.ActionMoveEast:
		g.Player.Move(1, 0)
	case input.ActionToggleFlashlight:
		g.Flashlight = !g.Flashlight
		if g.Flashlight {
			g.AddMessage(gotext.Get("Flashlight on"))
		} else {
			g.AddMessage(gotext.Get("Flashlight off"))
		}
	case input.ActionQuit:
		g.Running = false
	}
}
