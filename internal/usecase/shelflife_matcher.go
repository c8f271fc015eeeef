package usecase

import (
	"log"
	"strings"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

const (
	defaultFuzzyThreshold = 0.6
	defaultShelfLifeDays  = 7
)

// MatcherConfig holds configuration for the shelf-life matcher.
type MatcherConfig struct {
	FuzzyThreshold       float64 // similarity must strictly exceed this
	DefaultShelfLifeDays int
	EnableDebugLogging   bool
}

// ShelfLifeMatcher resolves free-text item names against the food reference
// taxonomy. The table is injected at construction and never mutated, so one
// matcher is safe for concurrent use and repeated calls on the same name
// yield the same result.
type ShelfLifeMatcher struct {
	reference      *domain.ReferenceTable
	fuzzyThreshold float64
	defaultDays    int
	debug          bool
}

// NewShelfLifeMatcher creates a matcher over a reference table. A nil table
// behaves like an empty one: every lookup degrades to the default estimate.
func NewShelfLifeMatcher(reference *domain.ReferenceTable, config MatcherConfig) *ShelfLifeMatcher {
	if reference == nil {
		reference = domain.NewReferenceTable(nil)
	}

	threshold := config.FuzzyThreshold
	if threshold <= 0 {
		threshold = defaultFuzzyThreshold
	}

	days := config.DefaultShelfLifeDays
	if days <= 0 {
		days = defaultShelfLifeDays
	}

	return &ShelfLifeMatcher{
		reference:      reference,
		fuzzyThreshold: threshold,
		defaultDays:    days,
		debug:          config.EnableDebugLogging,
	}
}

// Match returns shelf-life info for an item name. The cheap high-precision
// substring pass over the sorted reference keys runs first; otherwise the
// highest-scoring key under normalized edit-distance similarity wins,
// provided its score strictly exceeds the threshold.
func (m *ShelfLifeMatcher) Match(name string) domain.ShelfLifeInfo {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return m.defaultInfo()
	}

	for _, key := range m.reference.Keys() {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			info, _ := m.reference.Lookup(key)
			info.Matched = true
			if m.debug {
				log.Printf("[MATCH] %q: substring match on %q", name, key)
			}
			return info
		}
	}

	bestScore := -1.0
	bestKey := ""
	for _, key := range m.reference.Keys() {
		score := similarityRatio(normalized, key)
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}

	if bestKey != "" && bestScore > m.fuzzyThreshold {
		info, _ := m.reference.Lookup(bestKey)
		info.Matched = true
		if m.debug {
			log.Printf("[MATCH] %q: fuzzy match on %q (score %.2f)", name, bestKey, bestScore)
		}
		return info
	}

	if m.debug {
		log.Printf("[MATCH] %q: no match (best %q score %.2f), using defaults", name, bestKey, bestScore)
	}
	return m.defaultInfo()
}

func (m *ShelfLifeMatcher) defaultInfo() domain.ShelfLifeInfo {
	return domain.ShelfLifeInfo{
		Category:           "unknown",
		RecommendedStorage: domain.StorageShelf,
		FridgeDays:         m.defaultDays,
		ShelfDays:          m.defaultDays,
		Tips:               "No reference match found; shelf life is a default estimate.",
		Matched:            false,
	}
}

// similarityRatio is a normalized edit-distance ratio in [0,1]; 1 means the
// strings are equal.
func similarityRatio(s1, s2 string) float64 {
	if s1 == s2 {
		return 1
	}

	maxLen := len([]rune(s1))
	if l := len([]rune(s2)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}

	return 1 - float64(levenshteinDistance(s1, s2))/float64(maxLen)
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
