// Package camera provides a smoothed 2D viewport that follows a target
// through world space.
package camera

// Camera tracks a world-space offset for rendering. X and Y are the
// world pixel coordinates of the viewport's top-left corner.
type Camera struct {
	X float64
	Y float64

	ViewportW float64
	ViewportH float64

	// FollowSpeed scales how quickly the camera closes the gap to its
	// target each frame. Higher is snappier.
	FollowSpeed float64
}

// DefaultFollowSpeed is tuned for TileSize-50 maps at 60 FPS.
const DefaultFollowSpeed = 5.0

// New creates a camera for a viewport of the given pixel size.
func New(viewportW, viewportH float64) *Camera {
	return &Camera{
		ViewportW:   viewportW,
		ViewportH:   viewportH,
		FollowSpeed: DefaultFollowSpeed,
	}
}

// desired returns the camera position that centers the target, clamped
// to the map bounds. Maps smaller than the viewport are centered with a
// fixed negative offset instead of clamped.
func (c *Camera) desired(targetX, targetY, mapW, mapH float64) (float64, float64) {
	return desiredAxis(targetX, c.ViewportW, mapW), desiredAxis(targetY, c.ViewportH, mapH)
}

func desiredAxis(target, viewport, mapSize float64) float64 {
	if mapSize < viewport {
		// Small map: pin it to the middle of the viewport.
		return -(viewport - mapSize) / 2
	}
	pos := target - viewport/2
	if pos < 0 {
		pos = 0
	}
	if max := mapSize - viewport; pos > max {
		pos = max
	}
	return pos
}

// FollowTarget eases the camera toward centering the target point,
// respecting map bounds. The smoothing coefficient is FollowSpeed*dt,
// capped at 1 so a long frame can never overshoot the target.
func (c *Camera) FollowTarget(targetX, targetY, mapW, mapH, dt float64) {
	dx, dy := c.desired(targetX, targetY, mapW, mapH)

	f := c.FollowSpeed * dt
	if f > 1 {
		f = 1
	}
	c.X += (dx - c.X) * f
	c.Y += (dy - c.Y) * f
}

// SnapTo moves the camera immediately to its desired position for the
// target. Used after map transitions so the view never pans across the
// new map.
func (c *Camera) SnapTo(targetX, targetY, mapW, mapH float64) {
	c.X, c.Y = c.desired(targetX, targetY, mapW, mapH)
}

// WorldToScreen converts a world pixel position to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - c.X, wy - c.Y
}

// ScreenToWorld converts a screen position back to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + c.X, sy + c.Y
}
