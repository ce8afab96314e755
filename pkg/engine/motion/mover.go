// Package motion implements smooth grid-to-grid movement. An entity
// logically occupies whole cells; its rendered position eases between
// them over a fixed-duration animation.
package motion

import "campuslockdown/pkg/engine/world"

// Terrain is the walkability view a Mover needs from a map.
type Terrain interface {
	IsWalkable(x, y int) bool
}

// DefaultAnimationSpeed completes a one-cell move in 1/8 s.
const DefaultAnimationSpeed = 8.0

// Mover carries the movement state of one grid-bound entity. Grid
// coordinates are authoritative for game logic; PixelX/PixelY are the
// interpolated render position.
type Mover struct {
	GridX int
	GridY int

	TargetGridX int
	TargetGridY int

	PixelX float64
	PixelY float64

	Moving   bool
	Progress float64

	// AnimationSpeed is progress gained per second; a full cell takes
	// 1/AnimationSpeed seconds.
	AnimationSpeed float64

	terrain Terrain
}

// NewMover places an idle mover on a grid cell of the given terrain.
func NewMover(terrain Terrain, gx, gy int) *Mover {
	return &Mover{
		GridX:          gx,
		GridY:          gy,
		TargetGridX:    gx,
		TargetGridY:    gy,
		PixelX:         float64(gx * world.TileSize),
		PixelY:         float64(gy * world.TileSize),
		AnimationSpeed: DefaultAnimationSpeed,
		Progress:       1,
		terrain:        terrain,
	}
}

// SetTerrain rebinds the mover's walkability source. It does not move
// the mover; only future Move calls consult the new terrain.
func (m *Mover) SetTerrain(t Terrain) {
	m.terrain = t
}

// Teleport places the mover instantly on a cell, cancelling any
// animation in flight.
func (m *Mover) Teleport(gx, gy int) {
	m.GridX, m.GridY = gx, gy
	m.TargetGridX, m.TargetGridY = gx, gy
	m.PixelX = float64(gx * world.TileSize)
	m.PixelY = float64(gy * world.TileSize)
	m.Moving = false
	m.Progress = 1
}

// Move starts a one-cell step. It reports false without changing any
// state when an animation is already in flight, the step is not a
// single cardinal move, or the destination is blocked.
func (m *Mover) Move(dx, dy int) bool {
	if m.Moving {
		return false
	}
	if dx*dx+dy*dy != 1 {
		return false
	}

	nx, ny := m.GridX+dx, m.GridY+dy
	if m.terrain == nil || !m.terrain.IsWalkable(nx, ny) {
		return false
	}

	m.TargetGridX, m.TargetGridY = nx, ny
	m.Moving = true
	m.Progress = 0
	return true
}

// Update advances the movement animation. On completion the grid
// position snaps to the target and the mover goes idle in the same
// tick.
func (m *Mover) Update(dt float64) {
	if !m.Moving {
		return
	}

	m.Progress += m.AnimationSpeed * dt
	if m.Progress >= 1 {
		m.GridX, m.GridY = m.TargetGridX, m.TargetGridY
		m.PixelX = float64(m.GridX * world.TileSize)
		m.PixelY = float64(m.GridY * world.TileSize)
		m.Moving = false
		m.Progress = 1
		return
	}

	t := smoothstep(m.Progress)
	startX := float64(m.GridX * world.TileSize)
	startY := float64(m.GridY * world.TileSize)
	endX := float64(m.TargetGridX * world.TileSize)
	endY := float64(m.TargetGridY * world.TileSize)
	m.PixelX = startX + (endX-startX)*t
	m.PixelY = startY + (endY-startY)*t
}

// smoothstep maps linear progress to an ease-in/ease-out curve.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Settled reports whether the mover is idle on its grid cell, i.e. not
// animating between cells.
func (m *Mover) Settled() bool {
	return !m.Moving
}
