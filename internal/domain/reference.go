package domain

import (
	"sort"
	"strings"
)

// ReferenceEntry is one row of the FoodKeeper-style taxonomy: a canonical
// food name plus its shelf-life template.
type ReferenceEntry struct {
	Name string
	Info ShelfLifeInfo
}

// ReferenceTable is the process-wide food reference lookup. It is built once
// at startup and never mutated afterwards, so it is safe to share across
// concurrent matcher calls. An empty table is valid: the matcher degrades to
// default estimates.
type ReferenceTable struct {
	keys    []string
	entries map[string]ShelfLifeInfo
}

// NewReferenceTable builds an immutable table from loader output. Names are
// lowercased and trimmed; duplicate names keep the first entry seen. Keys are
// kept sorted so substring and fuzzy passes are deterministic.
func NewReferenceTable(entries []ReferenceEntry) *ReferenceTable {
	table := &ReferenceTable{
		entries: make(map[string]ShelfLifeInfo, len(entries)),
	}

	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key == "" {
			continue
		}
		if _, exists := table.entries[key]; exists {
			continue
		}
		table.entries[key] = e.Info
		table.keys = append(table.keys, key)
	}

	sort.Strings(table.keys)
	return table
}

// Keys returns the sorted canonical names. Callers must not modify the slice.
func (t *ReferenceTable) Keys() []string {
	return t.keys
}

// Lookup returns the shelf-life template for a canonical name.
func (t *ReferenceTable) Lookup(key string) (ShelfLifeInfo, bool) {
	info, ok := t.entries[key]
	return info, ok
}

// Len returns the number of reference entries.
func (t *ReferenceTable) Len() int {
	return len(t.keys)
}
