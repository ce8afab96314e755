package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/game/devtools"
	"campuslockdown/pkg/game/gameplay"
	"campuslockdown/pkg/game/maps"
	"campuslockdown/pkg/game/renderer"
	ebitenrenderer "campuslockdown/pkg/game/renderer/ebiten"
	tuirenderer "campuslockdown/pkg/game/renderer/tui"
	"campuslockdown/pkg/game/state"
)

func initGotext() {
	gotext.Configure("mo", "en_GB.utf8", "default")
}

// buildGame creates the session and the optional map-file watcher. A
// watcher failure only disables hot reload.
func buildGame(mapDir string) (*state.Game, *maps.Watcher) {
	store := maps.NewStore(mapDir)
	g := state.NewGame(store, rand.New(rand.NewSource(time.Now().UnixNano())))

	g.AddMessage(gotext.Get("Welcome to Campus Lockdown!"))
	g.AddMessage(gotext.Get("Walk into a building door to enter it. Press f for your flashlight."))

	watcher, err := maps.Watch(mapDir)
	if err != nil {
		log.Printf("map hot reload disabled: %v", err)
		watcher = nil
	}
	return g, watcher
}

// drainMapChanges invalidates cached maps whose files changed on disk.
// The campus and the map the player stands on keep their in-memory
// instance; edits to those are picked up on a later run or transition.
func drainMapChanges(g *state.Game, w *maps.Watcher) {
	for {
		select {
		case id := <-w.Changed():
			if id == maps.CampusID || id == g.MapID {
				continue
			}
			g.Store.Invalidate(id)
			delete(g.ItemsByMap, id)
			log.Printf("map %q changed on disk, cache dropped", id)
		default:
			return
		}
	}
}

func main() {
	useTUI := flag.Bool("tui", false, "render in the terminal instead of a window")
	mapDir := flag.String("maps", "maps", "directory holding the *_map.json files")
	dumpMap := flag.Bool("dumpmap", false, "write a debug dump of the loaded map to map.txt and exit")
	flag.Parse()

	initGotext()

	g, watcher := buildGame(*mapDir)
	if watcher != nil {
		defer watcher.Close()
	}

	if *dumpMap {
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			log.Fatalf("map dump: %v", err)
		}
		log.Printf("map dump written to %s", path)
		return
	}

	if *useTUI {
		renderer.SetRenderer(tuirenderer.New())
	} else {
		renderer.SetRenderer(ebitenrenderer.New())
	}
	if err := renderer.Current.Init(); err != nil {
		log.Fatalf("renderer init: %v", err)
	}
	defer renderer.Current.Shutdown()

	tick := func(dt float64, intents []input.Intent) bool {
		if watcher != nil {
			drainMapChanges(g, watcher)
		}
		for _, intent := range intents {
			gameplay.ProcessIntent(g, intent)
		}
		gameplay.Update(g, dt)
		return g.Running
	}

	if err := renderer.Current.Run(g, tick); err != nil {
		log.Fatalf("renderer: %v", err)
	}
}
