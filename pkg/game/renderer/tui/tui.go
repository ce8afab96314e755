// Package tui provides a terminal renderer for Campus Lockdown. It
// draws a character viewport centered on the player and reads single
// keypresses in raw mode.
package tui

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	engineinput "campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/renderer"
	"campuslockdown/pkg/game/state"
)

// Viewport dimensions in tiles; the player is centered.
const (
	viewportRows = 15
	viewportCols = 31
)

// PlayerIcon marks the player's cell.
const PlayerIcon = "@"

// glyph is the character and style a tile type renders as.
type glyph struct {
	char  string
	style color.Style
}

// Renderer is the terminal backend.
type Renderer struct {
	glyphs     map[world.TileType]glyph
	itemGlyphs map[items.Type]glyph

	stylePlayer color.Style
	styleDark   color.Style
	styleSubtle color.Style
	styleItem   color.Style
}

// New creates an uninitialised terminal renderer.
func New() *Renderer {
	return &Renderer{}
}

// Init builds the glyph and style tables.
func (r *Renderer) Init() error {
	r.stylePlayer = color.Style{color.FgGreen, color.OpBold}
	r.styleDark = color.Style{color.FgBlack}
	r.styleSubtle = color.Style{color.FgGray}
	r.styleItem = color.Style{color.FgGreen, color.OpBold}

	green := color.Style{color.FgGreen}
	blue := color.Style{color.FgBlue}
	gray := color.Style{color.FgGray}
	brown := color.Style{color.FgYellow}
	bold := color.Style{color.FgYellow, color.OpBold}
	cyan := color.Style{color.FgCyan}

	r.glyphs = map[world.TileType]glyph{
		world.Empty:          {" ", gray},
		world.Grass:          {".", green},
		world.Water:          {"~", blue},
		world.Wall:           {"▒", gray},
		world.Tree:           {"♣", color.Style{color.FgGreen, color.OpBold}},
		world.Pathway:        {":", gray},
		world.Library:        {"·", brown},
		world.Cafeteria:      {"·", brown},
		world.Dormitory:      {"·", blue},
		world.SportsField:    {"\"", green},
		world.ParkingLot:     {"=", gray},
		world.Door:           {"+", bold},
		world.Bookshelf:      {"#", brown},
		world.Desk:           {"d", brown},
		world.Chair:          {"h", brown},
		world.DiningTable:    {"T", brown},
		world.KitchenCounter: {"#", gray},
		world.ServingCounter: {"=", brown},
		world.Bed:            {"b", color.Style{color.FgMagenta}},
		world.Wardrobe:       {"#", brown},
		world.Bathroom:       {"o", cyan},
		world.ParkingSpace:   {"p", gray},
		world.DrivingLane:    {"-", gray},
		world.Sidewalk:       {":", gray},
		world.LibraryDoor:    {"⌂", bold},
		world.CafeteriaDoor:  {"⌂", bold},
		world.DormitoryDoor:  {"⌂", bold},
		world.ParkingDoor:    {"⌂", bold},
	}

	r.itemGlyphs = map[items.Type]glyph{
		items.Potion: {"!", color.Style{color.FgRed, color.OpBold}},
		items.Scroll: {"?", color.Style{color.FgBlue, color.OpBold}},
		items.Key:    {"⚷", bold},
	}
	return nil
}

// Run draws, blocks for a key, applies it and repeats. Each keypress
// advances the game in fixed sub-steps until the player settles, so a
// whole tile step happens per key in a terminal.
func (r *Renderer) Run(g *state.Game, tick renderer.Tick) error {
	const stepDt = 1.0 / 8

	for {
		r.drawFrame(g)

		raw, err := engineinput.ReadKey()
		if err != nil {
			return err
		}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))

		var intents []engineinput.Intent
		if intent.Action != engineinput.ActionNone {
			intents = []engineinput.Intent{intent}
		}
		if !tick(stepDt, intents) {
			return nil
		}
		for i := 0; i < 16 && !g.Player.Settled(); i++ {
			if !tick(stepDt, nil) {
				return nil
			}
		}
	}
}

// Shutdown restores the terminal; raw mode is already restored after
// every read, so only the cursor needs resetting.
func (r *Renderer) Shutdown() {
	fmt.Print("\n")
}

// termWidth returns the terminal width, with a fallback for pipes.
func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// litTiles converts the pixel light radius to whole tiles for the
// character grid.
func litTiles(g *state.Game) int {
	return int(math.Ceil(g.LightRadius() / world.TileSize))
}

func (r *Renderer) drawFrame(g *state.Game) {
	fmt.Print("\033[H\033[2J")

	fmt.Println(r.styleSubtle.Sprint(g.CurrentMap.Name()))
	fmt.Println()

	r.printMap(g)
	r.printStatusBar(g)
	r.printMessagesPane(g)
	fmt.Print("\n> ")
}

// printMap renders the viewport around the player. Cells beyond the
// lit radius render dark.
func (r *Renderer) printMap(g *state.Game) {
	m := g.CurrentMap
	px, py := g.Player.GridX, g.Player.GridY
	lit := litTiles(g)

	startX := px - viewportCols/2
	startY := py - viewportRows/2

	var sb strings.Builder
	for vy := 0; vy < viewportRows; vy++ {
		for vx := 0; vx < viewportCols; vx++ {
			gx, gy := startX+vx, startY+vy
			sb.WriteString(r.renderCell(g, m, gx, gy, px, py, lit))
		}
		sb.WriteString("\n")
	}
	fmt.Print(sb.String())
}

// renderCell returns the one-character representation of a grid cell.
func (r *Renderer) renderCell(g *state.Game, m *world.Map, gx, gy, px, py, lit int) string {
	if gx == px && gy == py {
		return r.stylePlayer.Sprint(PlayerIcon)
	}

	// Chebyshev distance against the lit radius.
	dx, dy := gx-px, gy-py
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > lit || dy > lit {
		return " "
	}

	tile, ok := m.TileAt(gx, gy)
	if !ok {
		return " "
	}

	for _, item := range g.Items() {
		if !item.Collected && item.GridX == gx && item.GridY == gy {
			gl := r.itemGlyphs[item.Type]
			return gl.style.Sprint(gl.char)
		}
	}

	gl, ok := r.glyphs[tile.Type]
	if !ok {
		return r.styleSubtle.Sprint("?")
	}
	return gl.style.Sprint(gl.char)
}

// printStatusBar renders the flashlight state and inventory.
func (r *Renderer) printStatusBar(g *state.Game) {
	fmt.Println()
	flashlight := "off"
	if g.Flashlight {
		flashlight = "on"
	}
	fmt.Println(r.styleSubtle.Sprintf("Flashlight: %s", flashlight))

	fmt.Print(r.styleSubtle.Sprint("Inventory: "))
	summary := g.Inventory.Summary()
	if len(summary) == 0 {
		fmt.Println(r.styleSubtle.Sprint("(empty)"))
	} else {
		styled := make([]string, len(summary))
		for i, s := range summary {
			styled[i] = r.styleItem.Sprint(s)
		}
		fmt.Println(strings.Join(styled, r.styleSubtle.Sprint(", ")))
	}
}

// printMessagesPane renders the message log under a horizontal rule.
func (r *Renderer) printMessagesPane(g *state.Game) {
	width := termWidth()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}
	left := strings.Repeat("─", sideLen)
	right := strings.Repeat("─", rightLen)

	fmt.Println()
	fmt.Println(r.styleSubtle.Sprint(left + label + right))

	if len(g.Messages) == 0 {
		fmt.Println(r.styleSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}
	fmt.Println(r.styleSubtle.Sprint(strings.Repeat("─", width)))
}
