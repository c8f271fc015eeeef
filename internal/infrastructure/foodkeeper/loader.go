package foodkeeper

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

// Record is one row of the FoodKeeper-style JSON reference file.
type Record struct {
	Name               string `json:"name"`
	Category           string `json:"category"`
	RecommendedStorage string `json:"recommended_storage"`
	ShelfLifeFridge    int    `json:"shelf_life_fridge_days"`
	ShelfLifeShelf     int    `json:"shelf_life_shelf_days"`
	Tips               string `json:"tips"`
}

// Loader reads the food reference taxonomy from a JSON file on disk, once at
// startup.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and maps the reference file. A missing or corrupt file returns
// an empty table wrapped with domain.ErrReferenceUnavailable so the caller
// can log a warning and degrade to default shelf-life estimates instead of
// aborting.
func (l *Loader) Load() (*domain.ReferenceTable, error) {
	if l.path == "" {
		return domain.NewReferenceTable(nil), domain.ErrReferenceUnavailable
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return domain.NewReferenceTable(nil), fmt.Errorf("%w: %v", domain.ErrReferenceUnavailable, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return domain.NewReferenceTable(nil), fmt.Errorf("%w: %v", domain.ErrReferenceUnavailable, err)
	}

	table := domain.NewReferenceTable(MapToEntries(records))
	log.Printf("[REFERENCE] loaded %d entries from %s", table.Len(), l.path)
	return table, nil
}
