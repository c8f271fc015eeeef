package usecase

import (
	"testing"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

func testReferenceTable() *domain.ReferenceTable {
	return domain.NewReferenceTable([]domain.ReferenceEntry{
		{
			Name: "Milk",
			Info: domain.ShelfLifeInfo{
				Category:           "dairy",
				RecommendedStorage: domain.StorageFridge,
				FridgeDays:         7,
				Tips:               "Keep refrigerated.",
			},
		},
		{
			Name: "Apple",
			Info: domain.ShelfLifeInfo{
				Category:           "produce",
				RecommendedStorage: domain.StorageFridge,
				FridgeDays:         21,
				ShelfDays:          7,
			},
		},
		{
			Name: "Whale Mill", // fuzzy-close to "whole milk" but not a substring
			Info: domain.ShelfLifeInfo{
				Category:           "other",
				RecommendedStorage: domain.StorageShelf,
				ShelfDays:          30,
			},
		},
	})
}

func TestMatch_SubstringMatch(t *testing.T) {
	m := NewShelfLifeMatcher(testReferenceTable(), MatcherConfig{})

	testCases := []struct {
		name         string
		input        string
		wantCategory string
	}{
		{"key contained in name", "Organic Whole Milk", "dairy"},
		{"name contained in key", "milk", "dairy"},
		{"case and whitespace insensitive", "  HONEYCRISP APPLES  ", "produce"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := m.Match(tc.input)
			if !info.Matched {
				t.Fatalf("Match(%q).Matched = false, want true", tc.input)
			}
			if info.Category != tc.wantCategory {
				t.Errorf("category = %q, want %q", info.Category, tc.wantCategory)
			}
		})
	}
}

// The substring pass runs before the fuzzy pass, so an exact containment
// beats a reference key that merely scores well on edit distance.
func TestMatch_SubstringBeatsFuzzy(t *testing.T) {
	m := NewShelfLifeMatcher(testReferenceTable(), MatcherConfig{})

	info := m.Match("Whole Milk")
	if !info.Matched {
		t.Fatal("Match(\"Whole Milk\").Matched = false, want true")
	}
	if info.Category != "dairy" {
		t.Errorf("category = %q, want %q (substring on milk, not fuzzy on whale mill)", info.Category, "dairy")
	}
}

func TestMatch_FuzzyMatch(t *testing.T) {
	m := NewShelfLifeMatcher(testReferenceTable(), MatcherConfig{})

	// One substitution against "apple": similarity 0.8, above the threshold.
	info := m.Match("ample")
	if !info.Matched {
		t.Fatal("Match(\"ample\").Matched = false, want true")
	}
	if info.Category != "produce" {
		t.Errorf("category = %q, want %q", info.Category, "produce")
	}
}

func TestMatch_ThresholdIsStrict(t *testing.T) {
	m := NewShelfLifeMatcher(testReferenceTable(), MatcherConfig{FuzzyThreshold: 0.6})

	// Two substitutions against "apple": similarity exactly at the threshold,
	// which must not match.
	info := m.Match("amply")
	if info.Matched {
		t.Fatalf("Match(\"amply\") matched category %q, want default", info.Category)
	}
}

func TestMatch_NoMatchReturnsDefault(t *testing.T) {
	m := NewShelfLifeMatcher(testReferenceTable(), MatcherConfig{DefaultShelfLifeDays: 5})

	info := m.Match("zucchini spiralizer attachment")
	if info.Matched {
		t.Fatal("Matched = true, want false")
	}
	if info.Category != "unknown" {
		t.Errorf("category = %q, want unknown", info.Category)
	}
	if info.RecommendedStorage != domain.StorageShelf {
		t.Errorf("storage = %q, want shelf", info.RecommendedStorage)
	}
	if info.FridgeDays != 5 || info.ShelfDays != 5 {
		t.Errorf("days = %d/%d, want 5/5", info.FridgeDays, info.ShelfDays)
	}
}

func TestMatch_EmptyName(t *testing.T) {
	m := NewShelfLifeMatcher(testReferenceTable(), MatcherConfig{})

	for _, input := range []string{"", "   "} {
		if info := m.Match(input); info.Matched {
			t.Errorf("Match(%q).Matched = true, want false", input)
		}
	}
}

func TestMatch_NilReferenceTable(t *testing.T) {
	m := NewShelfLifeMatcher(nil, MatcherConfig{})

	info := m.Match("milk")
	if info.Matched {
		t.Fatal("Matched = true, want false")
	}
	if info.FridgeDays != defaultShelfLifeDays {
		t.Errorf("fridge days = %d, want %d", info.FridgeDays, defaultShelfLifeDays)
	}
}

func TestMatch_Idempotent(t *testing.T) {
	m := NewShelfLifeMatcher(testReferenceTable(), MatcherConfig{})

	first := m.Match("Organic Whole Milk")
	second := m.Match("Organic Whole Milk")
	if first != second {
		t.Errorf("repeated match differs: %+v vs %+v", first, second)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	testCases := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"apple", "apple", 0},
		{"apple", "ample", 1},
		{"apple", "amply", 2},
		{"kitten", "sitting", 3},
	}

	for _, tc := range testCases {
		if got := levenshteinDistance(tc.s1, tc.s2); got != tc.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tc.s1, tc.s2, got, tc.want)
		}
	}
}
