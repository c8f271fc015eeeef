package domain

import (
	"sort"
	"testing"
)

func TestNewReferenceTable(t *testing.T) {
	table := NewReferenceTable([]ReferenceEntry{
		{Name: "  Milk ", Info: ShelfLifeInfo{Category: "dairy"}},
		{Name: "Apple", Info: ShelfLifeInfo{Category: "produce"}},
		{Name: "MILK", Info: ShelfLifeInfo{Category: "duplicate"}},
		{Name: "   ", Info: ShelfLifeInfo{Category: "blank"}},
	})

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (duplicate and blank dropped)", table.Len())
	}

	keys := table.Keys()
	if !sort.StringsAreSorted(keys) {
		t.Errorf("Keys() = %v, want sorted", keys)
	}

	info, ok := table.Lookup("milk")
	if !ok {
		t.Fatal("Lookup(milk) ok = false")
	}
	if info.Category != "dairy" {
		t.Errorf("category = %q, want the first entry to win", info.Category)
	}

	if _, ok := table.Lookup("bread"); ok {
		t.Error("Lookup(bread) ok = true, want false")
	}
}

func TestNewReferenceTable_Empty(t *testing.T) {
	for _, entries := range [][]ReferenceEntry{nil, {}} {
		table := NewReferenceTable(entries)
		if table == nil {
			t.Fatal("NewReferenceTable() = nil")
		}
		if table.Len() != 0 {
			t.Errorf("Len() = %d, want 0", table.Len())
		}
	}
}
