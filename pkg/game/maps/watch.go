package maps

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to map files in a directory so the game can
// drop stale cache entries. It never touches the Store directly: the
// game goroutine drains Changed and calls Store.Invalidate itself,
// keeping the cache single-threaded.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changed chan string
	quit    chan struct{}
}

// debounceWindow collapses the burst of write events most editors
// produce when saving a file.
const debounceWindow = 200 * time.Millisecond

// Watch starts watching dir for changes to *_map.json files.
func Watch(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		changed: make(chan string, 8),
		quit:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changed delivers the map id of each edited map file.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

func (w *Watcher) run() {
	lastEvent := make(map[string]time.Time)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			id := mapIDForFile(ev.Name)
			if id == "" {
				continue
			}
			now := time.Now()
			if now.Sub(lastEvent[id]) < debounceWindow {
				continue
			}
			lastEvent[id] = now
			select {
			case w.changed <- id:
			default:
				// Game loop is behind; it will reload on the next event.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("map watcher: %v", err)
		case <-w.quit:
			return
		}
	}
}

// mapIDForFile derives the map id from a file path, or "" when the
// file is not a map file.
func mapIDForFile(path string) string {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, "_map.json") {
		return ""
	}
	return strings.TrimSuffix(base, "_map.json")
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.quit)
	return w.fsw.Close()
}
