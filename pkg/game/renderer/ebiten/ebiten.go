// Package ebiten provides the Ebiten-based graphical renderer for
// Campus Lockdown.
package ebiten

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"campuslockdown/pkg/game/renderer"
	"campuslockdown/pkg/game/state"
)

// bgColor fills the void outside the map.
var bgColor = color.RGBA{R: 20, G: 30, B: 40, A: 255}

// Renderer draws the game into an Ebiten window and feeds keyboard
// input back through the tick callback.
type Renderer struct {
	game *state.Game
	tick renderer.Tick

	fontSource *text.GoTextFaceSource
	hudFace    *text.GoTextFace
	msgFace    *text.GoTextFace

	// darkness is the full-window overlay the light circle is carved
	// out of each frame; light is the pre-rendered radial gradient.
	darkness *ebiten.Image
	light    *ebiten.Image
}

// New creates an uninitialised Ebiten renderer.
func New() *Renderer {
	return &Renderer{}
}

// Init loads fonts, builds the lighting images and configures the
// window.
func (r *Renderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	r.fontSource = src
	r.hudFace = &text.GoTextFace{Source: src, Size: 18}
	r.msgFace = &text.GoTextFace{Source: src, Size: 14}

	r.light = newLightImage(state.FlashlightRadius)
	r.darkness = ebiten.NewImage(state.WindowWidth, state.WindowHeight)

	ebiten.SetWindowSize(state.WindowWidth, state.WindowHeight)
	ebiten.SetWindowTitle("Campus Lockdown")
	return nil
}

// Run enters the Ebiten main loop until the tick callback reports the
// game is over or the window closes.
func (r *Renderer) Run(g *state.Game, tick renderer.Tick) error {
	r.game = g
	r.tick = tick

	if err := ebiten.RunGame(r); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Shutdown releases backend resources. Ebiten tears the window down
// when RunGame returns, so nothing is held here.
func (r *Renderer) Shutdown() {}

// Update implements ebiten.Game. One Ebiten tick is one game tick.
func (r *Renderer) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if !r.tick(dt, r.pollIntents()) {
		return ebiten.Termination
	}
	return nil
}

// Layout implements ebiten.Game with a fixed logical resolution.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return state.WindowWidth, state.WindowHeight
}
