package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"campuslockdown/pkg/game/state"
)

// newLightImage pre-renders the flashlight's radial gradient: full
// strength inside 70% of the radius, fading linearly to nothing at the
// edge. The image is drawn with BlendDestinationOut so its alpha
// erases the darkness overlay.
func newLightImage(radius int) *ebiten.Image {
	d := radius * 2
	img := image.NewRGBA(image.Rect(0, 0, d, d))
	inner := float64(radius) * 0.7

	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x - radius)
			dy := float64(y - radius)
			dist := math.Sqrt(dx*dx + dy*dy)

			var alpha float64
			switch {
			case dist <= inner:
				alpha = 1
			case dist <= float64(radius):
				alpha = 1 - (dist-inner)/(float64(radius)-inner)
			}
			a := uint8(alpha * 255)
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return ebiten.NewImageFromImage(img)
}

// drawDarkness covers the frame with the darkness overlay and carves
// out the lit circle around the player. With the flashlight off the
// carved circle shrinks to the base visibility radius.
func (r *Renderer) drawDarkness(screen *ebiten.Image, g *state.Game) {
	r.darkness.Clear()
	r.darkness.Fill(color.RGBA{A: state.DarknessAlpha})

	radius := g.LightRadius()
	scale := radius / state.FlashlightRadius
	cx, cy := g.Camera.WorldToScreen(g.PlayerCenterX(), g.PlayerCenterY())

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendDestinationOut
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-radius, cy-radius)
	r.darkness.DrawImage(r.light, op)

	screen.DrawImage(r.darkness, nil)
}
