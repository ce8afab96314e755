// Package items implements the collectibles scattered across the maps
// and the player's inventory.
package items

import (
	"image/color"
	"math"

	"campuslockdown/pkg/engine/world"
)

// Type identifies a kind of collectible item.
type Type int

const (
	Potion Type = iota
	Scroll
	Key
)

// Types lists all item types in display order.
var Types = []Type{Potion, Scroll, Key}

// Info holds the per-type display metadata.
type Info struct {
	Name        string
	Color       color.RGBA
	Description string
}

var itemInfoTable = map[Type]Info{
	Potion: {
		Name:        "Health Potion",
		Color:       color.RGBA{R: 255, G: 100, B: 100, A: 255},
		Description: "Restores health when consumed",
	},
	Scroll: {
		Name:        "Magic Scroll",
		Color:       color.RGBA{R: 100, G: 100, B: 255, A: 255},
		Description: "Contains ancient magical knowledge",
	},
	Key: {
		Name:        "Golden Key",
		Color:       color.RGBA{R: 255, G: 215, B: 0, A: 255},
		Description: "Opens locked doors and chests",
	},
}

// Info returns the display metadata for the item type.
func (t Type) Info() Info {
	if info, ok := itemInfoTable[t]; ok {
		return info
	}
	return Info{
		Name:        "Unknown Item",
		Color:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Description: "A mysterious item",
	}
}

// String returns the display name of the item type.
func (t Type) String() string {
	return t.Info().Name
}

// bobSpeed drives the idle floating animation of uncollected items.
const bobSpeed = 3.0

// Item is a collectible sitting on a grid cell. Items render smaller
// than a tile and bob in place until collected.
type Item struct {
	Type      Type
	GridX     int
	GridY     int
	Collected bool

	// Animation state, only meaningful while uncollected.
	BobOffset float64
	GlowAlpha uint8
}

// New creates an item on a grid cell.
func New(t Type, gx, gy int) *Item {
	return &Item{Type: t, GridX: gx, GridY: gy, GlowAlpha: 128}
}

// Update advances the bob/glow animation. Collected items stop
// animating.
func (i *Item) Update(dt float64) {
	if i.Collected {
		return
	}
	i.BobOffset += bobSpeed * dt
	i.GlowAlpha = uint8(128 + 64*math.Sin(i.BobOffset*2))
}

// PixelX returns the item's world pixel X, centered in its tile.
func (i *Item) PixelX() float64 {
	return float64(i.GridX*world.TileSize + world.TileSize/4)
}

// PixelY returns the item's world pixel Y, centered in its tile.
func (i *Item) PixelY() float64 {
	return float64(i.GridY*world.TileSize + world.TileSize/4)
}

// BobY returns the vertical bob displacement for rendering.
func (i *Item) BobY() float64 {
	return math.Sin(i.BobOffset) * 3
}

// Size returns the item's rendered edge length in pixels.
func (i *Item) Size() float64 {
	return world.TileSize / 2
}
