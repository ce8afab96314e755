package state

import (
	"math/rand"
	"testing"

	"campuslockdown/pkg/game/maps"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	// Empty dir: the store substitutes the built-in campus map.
	return NewGame(maps.NewStore(t.TempDir()), rand.New(rand.NewSource(42)))
}

func TestNewGameStartsOnWalkableCell(t *testing.T) {
	g := newTestGame(t)

	if g.MapID != maps.CampusID {
		t.Errorf("MapID = %q, want campus", g.MapID)
	}
	if !g.CurrentMap.IsWalkable(g.Player.GridX, g.Player.GridY) {
		t.Errorf("player starts on non-walkable cell (%d,%d)", g.Player.GridX, g.Player.GridY)
	}
	if len(g.Items()) == 0 {
		t.Error("campus should have spawned items")
	}
	if !g.Running {
		t.Error("new game should be running")
	}
}

func TestLightRadius(t *testing.T) {
	g := newTestGame(t)

	if g.LightRadius() != VisibilityRadius {
		t.Errorf("radius = %v, want %v with flashlight off", g.LightRadius(), VisibilityRadius)
	}
	g.Flashlight = true
	if g.LightRadius() != FlashlightRadius {
		t.Errorf("radius = %v, want %v with flashlight on", g.LightRadius(), FlashlightRadius)
	}
}

func TestAddMessageCapsLog(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 8; i++ {
		g.AddMessage(string(rune('a' + i)))
	}
	if len(g.Messages) != 5 {
		t.Fatalf("message log holds %d entries, want 5", len(g.Messages))
	}
	if g.Messages[0] != "d" || g.Messages[4] != "h" {
		t.Errorf("log = %v, want the last five messages", g.Messages)
	}
}
