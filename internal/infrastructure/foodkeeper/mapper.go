package foodkeeper

import (
	"strings"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

// MapToEntries converts raw FoodKeeper records to domain reference entries.
// Rows without a name are dropped. Matched stays false in the template; the
// matcher sets it when an entry is actually resolved.
func MapToEntries(records []Record) []domain.ReferenceEntry {
	entries := make([]domain.ReferenceEntry, 0, len(records))

	for _, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		entries = append(entries, domain.ReferenceEntry{
			Name: r.Name,
			Info: domain.ShelfLifeInfo{
				Category:           r.Category,
				RecommendedStorage: mapStorage(r.RecommendedStorage),
				FridgeDays:         r.ShelfLifeFridge,
				ShelfDays:          r.ShelfLifeShelf,
				Tips:               r.Tips,
			},
		})
	}

	return entries
}

// mapStorage normalizes the storage column; anything not recognizably
// refrigerated defaults to shelf storage.
func mapStorage(s string) domain.StorageLocation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fridge", "refrigerator", "refrigerate", "refrigerated":
		return domain.StorageFridge
	default:
		return domain.StorageShelf
	}
}
