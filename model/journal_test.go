package model

import "testing"

func TestJournalStageAndReplace(t *testing.T) {
	var j Journal

	j.Stage(3, Modification{Kind: ModCreate, Start: 2048, End: 4095})
	j.Stage(1, Modification{Kind: ModDelete})
	j.Stage(3, Modification{Kind: ModDelete})

	if j.Len() != 2 {
		t.Fatalf("len = %d, want 2", j.Len())
	}

	mod, ok := j.Get(3)
	if !ok || mod.Kind != ModDelete {
		t.Fatalf("entry 3 = (%+v, %v), want replaced delete record", mod, ok)
	}

	// Replacing must not change insertion order.
	var order []uint16
	j.Each(func(n uint16, _ Modification) { order = append(order, n) })
	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Fatalf("order = %v, want [3 1]", order)
	}
}

func TestJournalRemove(t *testing.T) {
	var j Journal

	j.Remove(9) // no-op on empty journal

	j.Stage(2, Modification{Kind: ModCreate, Start: 2048, End: 2147})
	j.Remove(2)

	if j.Len() != 0 {
		t.Fatalf("len = %d after remove, want 0", j.Len())
	}
	if _, ok := j.Get(2); ok {
		t.Fatal("removed entry still present")
	}
}
