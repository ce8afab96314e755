package items

import (
	"fmt"
	"strings"
)

// DefaultMaxSlots is the inventory capacity.
const DefaultMaxSlots = 20

// Inventory holds the player's collected items, bounded by a fixed
// number of slots.
type Inventory struct {
	maxSlots int
	items    []*Item
	counts   map[Type]int
}

// NewInventory creates an empty inventory with the default capacity.
func NewInventory() *Inventory {
	return &Inventory{
		maxSlots: DefaultMaxSlots,
		counts:   make(map[Type]int),
	}
}

// Add stores an item, reporting false when the inventory is full.
func (inv *Inventory) Add(item *Item) bool {
	if len(inv.items) >= inv.maxSlots {
		return false
	}
	inv.items = append(inv.items, item)
	inv.counts[item.Type]++
	return true
}

// Remove discards up to count items of a type, returning how many were
// actually removed.
func (inv *Inventory) Remove(t Type, count int) int {
	removed := 0
	kept := inv.items[:0]
	for _, item := range inv.items {
		if item.Type == t && removed < count {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	inv.items = kept
	inv.counts[t] -= removed
	return removed
}

// Count returns how many items of a type are held.
func (inv *Inventory) Count(t Type) int {
	return inv.counts[t]
}

// Total returns the number of occupied slots.
func (inv *Inventory) Total() int {
	return len(inv.items)
}

// Full reports whether no more items can be added.
func (inv *Inventory) Full() bool {
	return len(inv.items) >= inv.maxSlots
}

// Clear discards everything.
func (inv *Inventory) Clear() {
	inv.items = nil
	inv.counts = make(map[Type]int)
}

// Summary returns a one-line per-type count for the HUD, e.g.
// "Health Potion x3".
func (inv *Inventory) Summary() []string {
	var lines []string
	for _, t := range Types {
		if n := inv.counts[t]; n > 0 {
			lines = append(lines, fmt.Sprintf("%s x%d", t.Info().Name, n))
		}
	}
	return lines
}

// String renders the summary on one line for logs.
func (inv *Inventory) String() string {
	lines := inv.Summary()
	if len(lines) == 0 {
		return "empty"
	}
	return strings.Join(lines, ", ")
}
