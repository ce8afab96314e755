package motion

import (
	"math"
	"testing"

	"campuslockdown/pkg/engine/world"
)

func testTerrain(t *testing.T) *world.Map {
	t.Helper()
	types, err := world.ParseRows([]string{
		"GGGG",
		"GWGG",
		"GGGG",
	})
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	m, err := world.NewMap("terrain", types, world.GridPoint{})
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return m
}

func newTestMover(t *testing.T, gx, gy int) *Mover {
	t.Helper()
	m := NewMover(nil, gx, gy)
	m.SetTerrain(testTerrain(t))
	return m
}

func TestMoveRejections(t *testing.T) {
	tests := []struct {
		name   string
		gx, gy int
		dx, dy int
	}{
		{"into water", 0, 1, 1, 0},
		{"off the left edge", 0, 0, -1, 0},
		{"off the top edge", 0, 0, 0, -1},
		{"diagonal step", 0, 0, 1, 1},
		{"multi-cell step", 0, 0, 2, 0},
		{"zero step", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMover(t, tt.gx, tt.gy)
			if m.Move(tt.dx, tt.dy) {
				t.Fatal("Move should have been rejected")
			}
			if m.Moving || m.GridX != tt.gx || m.GridY != tt.gy {
				t.Error("rejected move must not change state")
			}
		})
	}
}

func TestMoveWhileMovingIsRejected(t *testing.T) {
	m := newTestMover(t, 0, 0)

	if !m.Move(1, 0) {
		t.Fatal("first move should start")
	}
	m.Update(0.01)

	if m.Move(0, 1) {
		t.Error("second move during animation should be rejected")
	}
	if m.TargetGridX != 1 || m.TargetGridY != 0 {
		t.Error("in-flight target must be unchanged")
	}
}

func TestUpdateCompletesMove(t *testing.T) {
	m := newTestMover(t, 0, 0)
	if !m.Move(1, 0) {
		t.Fatal("move should start")
	}

	// At AnimationSpeed 8, 1/8 s completes the step.
	for i := 0; i < 8; i++ {
		m.Update(1.0 / 64)
	}

	if m.Moving {
		t.Error("mover should be idle after full duration")
	}
	if m.GridX != 1 || m.GridY != 0 {
		t.Errorf("grid position = (%d,%d), want (1,0)", m.GridX, m.GridY)
	}
	if m.PixelX != float64(world.TileSize) || m.PixelY != 0 {
		t.Errorf("pixel position = (%v,%v), want (%d,0)", m.PixelX, m.PixelY, world.TileSize)
	}
	if m.Progress != 1 {
		t.Errorf("progress = %v, want 1", m.Progress)
	}
}

func TestInterpolationFollowsSmoothstep(t *testing.T) {
	m := newTestMover(t, 0, 0)
	if !m.Move(1, 0) {
		t.Fatal("move should start")
	}

	// Advance to exactly half progress: smoothstep(0.5) = 0.5.
	m.Update(0.5 / m.AnimationSpeed)
	if math.Abs(m.PixelX-float64(world.TileSize)/2) > 1e-9 {
		t.Errorf("at half progress PixelX = %v, want %v", m.PixelX, float64(world.TileSize)/2)
	}

	// Early progress moves less than linearly (ease-in).
	m2 := newTestMover(t, 0, 0)
	m2.Move(1, 0)
	m2.Update(0.25 / m2.AnimationSpeed)
	linear := 0.25 * float64(world.TileSize)
	if m2.PixelX >= linear {
		t.Errorf("at quarter progress PixelX = %v, want below linear %v", m2.PixelX, linear)
	}
}

func TestHugeDtSnapsWithoutOvershoot(t *testing.T) {
	m := newTestMover(t, 0, 0)
	if !m.Move(0, 1) {
		t.Fatal("move should start")
	}

	m.Update(5)

	if m.Moving {
		t.Error("mover should be idle")
	}
	if m.PixelY != float64(world.TileSize) {
		t.Errorf("PixelY = %v, want exactly %d", m.PixelY, world.TileSize)
	}
}

func TestTeleportCancelsAnimation(t *testing.T) {
	m := newTestMover(t, 0, 0)
	m.Move(1, 0)
	m.Update(0.01)

	m.Teleport(3, 2)

	if m.Moving {
		t.Error("teleport should cancel the animation")
	}
	if m.GridX != 3 || m.GridY != 2 || m.TargetGridX != 3 || m.TargetGridY != 2 {
		t.Error("teleport should set grid and target")
	}
	if m.PixelX != float64(3*world.TileSize) || m.PixelY != float64(2*world.TileSize) {
		t.Error("teleport should snap the pixel position")
	}
}

func TestSetTerrainAffectsFutureMovesOnly(t *testing.T) {
	m := newTestMover(t, 0, 0)
	if !m.Move(1, 0) {
		t.Fatal("move should start")
	}

	// Rebind to terrain where everything is blocked; the in-flight
	// animation still completes.
	blocked, err := world.NewMap("blocked", [][]world.TileType{{world.Wall}}, world.GridPoint{})
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	m.SetTerrain(blocked)

	m.Update(5)
	if m.GridX != 1 {
		t.Error("in-flight move should complete after rebinding")
	}
	if m.Move(1, 0) {
		t.Error("new move should consult the new terrain")
	}
}
