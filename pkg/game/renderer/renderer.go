// Package renderer defines the boundary between the game core and its
// presentation backends. The core never draws; backends never decide
// game rules.
package renderer

import (
	"campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/game/state"
)

// Tick advances the game: the backend calls it once per frame with the
// elapsed time and the intents gathered since the last frame. It
// reports false when the game is over and the backend should stop.
type Tick func(dt float64, intents []input.Intent) bool

// Renderer is a presentation backend. Implementations include the
// Ebiten window and the terminal renderer; the backend owns its event
// loop and drives the game through the Tick callback.
type Renderer interface {
	// Init prepares the backend (window, fonts, terminal state).
	Init() error

	// Run enters the backend's loop. It draws g each frame and calls
	// tick until tick reports false or the backend fails.
	Run(g *state.Game, tick Tick) error

	// Shutdown releases backend resources.
	Shutdown()
}

// Current holds the active renderer instance.
var Current Renderer

// SetRenderer sets the active renderer.
func SetRenderer(r Renderer) {
	Current = r
}
