package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/state"
)

var (
	playerColor       = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	playerBorderColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudColor          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	msgColor          = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Draw implements ebiten.Game.
func (r *Renderer) Draw(screen *ebiten.Image) {
	g := r.game
	if g == nil {
		return
	}

	screen.Fill(bgColor)
	r.drawMap(screen, g)
	r.drawItems(screen, g)
	r.drawPlayer(screen, g)
	r.drawDarkness(screen, g)
	r.drawHUD(screen, g)
}

// drawMap draws the tiles overlapping the viewport as filled rects
// with a thin accent border.
func (r *Renderer) drawMap(screen *ebiten.Image, g *state.Game) {
	m := g.CurrentMap
	cam := g.Camera

	startX := clamp(int(cam.X)/world.TileSize-1, 0, m.Width())
	startY := clamp(int(cam.Y)/world.TileSize-1, 0, m.Height())
	endX := clamp(startX+int(cam.ViewportW)/world.TileSize+3, 0, m.Width())
	endY := clamp(startY+int(cam.ViewportH)/world.TileSize+3, 0, m.Height())

	for gy := startY; gy < endY; gy++ {
		for gx := startX; gx < endX; gx++ {
			tile, ok := m.TileAt(gx, gy)
			if !ok {
				continue
			}
			info := tile.Type.Info()
			sx, sy := cam.WorldToScreen(tile.PixelX(), tile.PixelY())
			vector.DrawFilledRect(screen, float32(sx), float32(sy), world.TileSize, world.TileSize, info.Color, false)
			vector.StrokeRect(screen, float32(sx), float32(sy), world.TileSize, world.TileSize, 1, info.Accent, false)
		}
	}
}

// drawItems draws each uncollected item on the current map as a
// bobbing circle with a glow ring.
func (r *Renderer) drawItems(screen *ebiten.Image, g *state.Game) {
	for _, item := range g.Items() {
		if item.Collected {
			continue
		}
		sx, sy := g.Camera.WorldToScreen(item.PixelX(), item.PixelY()+item.BobY())
		c := item.Type.Info().Color
		half := float32(item.Size() / 2)
		cx := float32(sx) + half
		cy := float32(sy) + half

		glow := c
		glow.A = item.GlowAlpha
		vector.DrawFilledCircle(screen, cx, cy, half+3, glow, true)
		vector.DrawFilledCircle(screen, cx, cy, half, c, true)
	}
}

// drawPlayer draws the player as a bordered square centered in its
// tile, at the interpolated pixel position.
func (r *Renderer) drawPlayer(screen *ebiten.Image, g *state.Game) {
	const inset = (world.TileSize - state.PlayerSize) / 2
	sx, sy := g.Camera.WorldToScreen(g.Player.PixelX+inset, g.Player.PixelY+inset)
	vector.DrawFilledRect(screen, float32(sx), float32(sy), state.PlayerSize, state.PlayerSize, playerColor, false)
	vector.StrokeRect(screen, float32(sx), float32(sy), state.PlayerSize, state.PlayerSize, 2, playerBorderColor, false)
}

// drawHUD draws the map name, flashlight state and inventory in the
// top-left corner and the message log along the bottom edge.
func (r *Renderer) drawHUD(screen *ebiten.Image, g *state.Game) {
	y := 8.0
	r.drawText(screen, g.CurrentMap.Name(), r.hudFace, 10, y, hudColor)
	y += 24

	flashlight := "Flashlight: off"
	if g.Flashlight {
		flashlight = "Flashlight: on"
	}
	r.drawText(screen, flashlight, r.msgFace, 10, y, msgColor)
	y += 20

	r.drawText(screen, fmt.Sprintf("Items: %d/%d", g.Inventory.Total(), items.DefaultMaxSlots), r.msgFace, 10, y, msgColor)
	y += 20
	for _, line := range g.Inventory.Summary() {
		r.drawText(screen, line, r.msgFace, 10, y, msgColor)
		y += 20
	}

	my := float64(state.WindowHeight) - 20*float64(len(g.Messages)) - 8
	for _, msg := range g.Messages {
		r.drawText(screen, msg, r.msgFace, 10, my, msgColor)
		my += 20
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
