package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

// Package-level compiled regex patterns for cache key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// ShelfLifeServiceConfig holds configuration for the shelf-life service.
type ShelfLifeServiceConfig struct {
	CacheTTL time.Duration
	Matcher  MatcherConfig
}

// ShelfLifeService handles shelf-life lookup with caching. Matching is
// deterministic, so default (unmatched) results are cached too.
type ShelfLifeService struct {
	cache    domain.CacheRepository
	matcher  *ShelfLifeMatcher
	cacheTTL time.Duration
}

// NewShelfLifeService creates a shelf-life service over the injected
// reference table. The cache may be nil, in which case every lookup runs the
// matcher.
func NewShelfLifeService(
	cache domain.CacheRepository,
	reference *domain.ReferenceTable,
	config ShelfLifeServiceConfig,
) *ShelfLifeService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 168 * time.Hour // reference data is static, a week is safe
	}

	return &ShelfLifeService{
		cache:    cache,
		matcher:  NewShelfLifeMatcher(reference, config.Matcher),
		cacheTTL: cacheTTL,
	}
}

// LookupShelfLife resolves an item name to its shelf-life info.
// Flow: check cache -> match against reference -> cache -> return.
func (s *ShelfLifeService) LookupShelfLife(ctx context.Context, name string) (domain.ShelfLifeInfo, error) {
	if strings.TrimSpace(name) == "" {
		return domain.ShelfLifeInfo{}, domain.ErrInvalidRequest
	}

	key := shelfLifeCacheKey(name)

	if s.cache != nil {
		if value, err := s.cache.Get(ctx, key); err == nil {
			if info, ok := shelfLifeFromCache(value); ok {
				return info, nil
			}
		}
	}

	info := s.matcher.Match(name)

	if s.cache != nil {
		// Caching is best effort; a failed Set never fails the lookup.
		_ = s.cache.Set(ctx, key, info, s.cacheTTL)
	}

	return info, nil
}

// shelfLifeCacheKey normalizes an item name into a cache key.
// Format: "shelflife:{normalized name}"
func shelfLifeCacheKey(name string) string {
	normalized := strings.ToLower(name)
	normalized = nonAlphanumericRegex.ReplaceAllString(normalized, "")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")
	return "shelflife:" + strings.TrimSpace(normalized)
}

// shelfLifeFromCache converts a cached value (a generic map after the JSON
// round trip) back into ShelfLifeInfo.
func shelfLifeFromCache(value interface{}) (domain.ShelfLifeInfo, bool) {
	if info, ok := value.(domain.ShelfLifeInfo); ok {
		return info, true
	}

	data, ok := value.(map[string]interface{})
	if !ok {
		return domain.ShelfLifeInfo{}, false
	}

	info := domain.ShelfLifeInfo{}
	if v, ok := data["category"].(string); ok {
		info.Category = v
	}
	if v, ok := data["recommendedStorage"].(string); ok {
		info.RecommendedStorage = domain.StorageLocation(v)
	}
	if v, ok := data["shelfLifeFridgeDays"].(float64); ok {
		info.FridgeDays = int(v)
	}
	if v, ok := data["shelfLifeShelfDays"].(float64); ok {
		info.ShelfDays = int(v)
	}
	if v, ok := data["tips"].(string); ok {
		info.Tips = v
	}
	if v, ok := data["matched"].(bool); ok {
		info.Matched = v
	}

	return info, true
}
