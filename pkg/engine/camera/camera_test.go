package camera

import (
	"math"
	"testing"
)

const (
	viewportW = 1000.0
	viewportH = 800.0
)

func newTestCamera() *Camera {
	return New(viewportW, viewportH)
}

func TestFollowTargetConverges(t *testing.T) {
	c := newTestCamera()
	mapW, mapH := 4000.0, 3000.0
	targetX, targetY := 2000.0, 1500.0

	// Simulate two seconds at 60 FPS with a stationary target.
	for i := 0; i < 120; i++ {
		c.FollowTarget(targetX, targetY, mapW, mapH, 1.0/60)
	}

	wantX := targetX - viewportW/2
	wantY := targetY - viewportH/2
	if math.Abs(c.X-wantX) > 0.5 || math.Abs(c.Y-wantY) > 0.5 {
		t.Errorf("camera at (%v,%v), want near (%v,%v)", c.X, c.Y, wantX, wantY)
	}
}

func TestFollowTargetMovesMonotonically(t *testing.T) {
	c := newTestCamera()
	mapW, mapH := 4000.0, 3000.0

	prevGap := math.Inf(1)
	for i := 0; i < 60; i++ {
		c.FollowTarget(2000, 1500, mapW, mapH, 1.0/60)
		gap := math.Abs(c.X - (2000 - viewportW/2))
		if gap > prevGap {
			t.Fatalf("frame %d: gap grew from %v to %v", i, prevGap, gap)
		}
		prevGap = gap
	}
}

func TestFollowTargetClampsToMapEdges(t *testing.T) {
	tests := []struct {
		name             string
		targetX, targetY float64
		wantX, wantY     float64
	}{
		{"top-left corner", 0, 0, 0, 0},
		{"bottom-right corner", 4000, 3000, 4000 - viewportW, 3000 - viewportH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera()
			c.SnapTo(tt.targetX, tt.targetY, 4000, 3000)
			if c.X != tt.wantX || c.Y != tt.wantY {
				t.Errorf("camera at (%v,%v), want (%v,%v)", c.X, c.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSmallMapIsCentered(t *testing.T) {
	c := newTestCamera()
	mapW, mapH := 500.0, 400.0

	c.SnapTo(250, 200, mapW, mapH)

	wantX := -(viewportW - mapW) / 2
	wantY := -(viewportH - mapH) / 2
	if c.X != wantX || c.Y != wantY {
		t.Errorf("camera at (%v,%v), want (%v,%v)", c.X, c.Y, wantX, wantY)
	}

	// The offset is independent of the target on a small map.
	c.FollowTarget(0, 0, mapW, mapH, 1.0/60)
	if c.X != wantX || c.Y != wantY {
		t.Errorf("small-map offset drifted to (%v,%v)", c.X, c.Y)
	}
}

func TestLargeDtDoesNotOvershoot(t *testing.T) {
	c := newTestCamera()
	mapW, mapH := 4000.0, 3000.0

	// FollowSpeed*dt well above 1: the camera must land exactly on the
	// desired position, not past it.
	c.FollowTarget(2000, 1500, mapW, mapH, 10)

	wantX := 2000 - viewportW/2
	wantY := 1500 - viewportH/2
	if c.X != wantX || c.Y != wantY {
		t.Errorf("camera at (%v,%v), want exactly (%v,%v)", c.X, c.Y, wantX, wantY)
	}
}

func TestWorldScreenRoundTrip(t *testing.T) {
	c := newTestCamera()
	c.X, c.Y = 123.5, -42.25

	sx, sy := c.WorldToScreen(500, 300)
	wx, wy := c.ScreenToWorld(sx, sy)
	if wx != 500 || wy != 300 {
		t.Errorf("round trip gave (%v,%v), want (500,300)", wx, wy)
	}
}
