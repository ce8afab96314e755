package items

import "testing"

func TestInventoryAddAndCount(t *testing.T) {
	inv := NewInventory()

	if !inv.Add(New(Potion, 0, 0)) {
		t.Fatal("Add to empty inventory should succeed")
	}
	inv.Add(New(Potion, 1, 0))
	inv.Add(New(Key, 2, 0))

	if inv.Count(Potion) != 2 {
		t.Errorf("potion count = %d, want 2", inv.Count(Potion))
	}
	if inv.Count(Scroll) != 0 {
		t.Errorf("scroll count = %d, want 0", inv.Count(Scroll))
	}
	if inv.Total() != 3 {
		t.Errorf("total = %d, want 3", inv.Total())
	}
}

func TestInventoryCapacity(t *testing.T) {
	inv := NewInventory()

	for i := 0; i < DefaultMaxSlots; i++ {
		if !inv.Add(New(Scroll, i, 0)) {
			t.Fatalf("add %d should succeed", i)
		}
	}
	if !inv.Full() {
		t.Error("inventory should report full")
	}
	if inv.Add(New(Scroll, 99, 0)) {
		t.Error("add past capacity should fail")
	}
	if inv.Total() != DefaultMaxSlots {
		t.Errorf("total = %d, want %d", inv.Total(), DefaultMaxSlots)
	}
}

func TestInventoryRemove(t *testing.T) {
	inv := NewInventory()
	for i := 0; i < 3; i++ {
		inv.Add(New(Potion, i, 0))
	}
	inv.Add(New(Key, 3, 0))

	if got := inv.Remove(Potion, 2); got != 2 {
		t.Errorf("Remove returned %d, want 2", got)
	}
	if inv.Count(Potion) != 1 {
		t.Errorf("potion count = %d, want 1", inv.Count(Potion))
	}

	// Removing more than held removes what's there.
	if got := inv.Remove(Potion, 5); got != 1 {
		t.Errorf("Remove returned %d, want 1", got)
	}
	if inv.Total() != 1 {
		t.Errorf("total = %d, want 1", inv.Total())
	}
}

func TestInventorySummary(t *testing.T) {
	inv := NewInventory()
	if inv.String() != "empty" {
		t.Errorf("empty inventory String = %q", inv.String())
	}

	inv.Add(New(Key, 0, 0))
	inv.Add(New(Key, 1, 0))
	lines := inv.Summary()
	if len(lines) != 1 || lines[0] != "Golden Key x2" {
		t.Errorf("Summary = %v, want [Golden Key x2]", lines)
	}
}
