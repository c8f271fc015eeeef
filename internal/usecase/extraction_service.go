package usecase

import (
	"context"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

// ExtractionService runs the full pipeline: normalize OCR text, extract item
// records with the layout-appropriate extractor, and enrich every record
// with shelf-life metadata.
type ExtractionService struct {
	receipts    *ReceiptExtractor
	screenshots *ScreenshotExtractor
	shelfLife   *ShelfLifeService
}

// NewExtractionService wires the extractors and the shelf-life service.
func NewExtractionService(
	receipts *ReceiptExtractor,
	screenshots *ScreenshotExtractor,
	shelfLife *ShelfLifeService,
) *ExtractionService {
	return &ExtractionService{
		receipts:    receipts,
		screenshots: screenshots,
		shelfLife:   shelfLife,
	}
}

// ParseReceipt extracts and enriches items from one physical receipt's OCR
// text. Item order mirrors line order.
func (s *ExtractionService) ParseReceipt(ctx context.Context, text string) (*domain.Extraction, error) {
	result, err := s.receipts.Extract(NormalizeOCRText(text))
	if err != nil {
		return nil, err
	}
	s.enrich(ctx, result.Items)
	return result, nil
}

// ParseScreenshots extracts and enriches items from app-screenshot OCR
// blocks, concatenated in upload order.
func (s *ExtractionService) ParseScreenshots(ctx context.Context, blocks []string) (*domain.Extraction, error) {
	normalized := make([]string, len(blocks))
	for i, block := range blocks {
		normalized[i] = NormalizeOCRText(block)
	}

	result, err := s.screenshots.Extract(normalized)
	if err != nil {
		return nil, err
	}
	s.enrich(ctx, result.Items)
	return result, nil
}

// MatchName resolves a bare item name to shelf-life info. Used by the
// workflow layer after user edits; safe to call repeatedly.
func (s *ExtractionService) MatchName(ctx context.Context, name string) (domain.ShelfLifeInfo, error) {
	return s.shelfLife.LookupShelfLife(ctx, name)
}

// Rematch re-runs shelf-life matching for an edited record in place.
func (s *ExtractionService) Rematch(ctx context.Context, item *domain.ItemRecord) error {
	info, err := s.shelfLife.LookupShelfLife(ctx, item.Name)
	if err != nil {
		return err
	}
	item.ShelfLife = &info
	return nil
}

func (s *ExtractionService) enrich(ctx context.Context, items []domain.ItemRecord) {
	for i := range items {
		info, err := s.shelfLife.LookupShelfLife(ctx, items[i].Name)
		if err != nil {
			continue
		}
		items[i].ShelfLife = &info
	}
}
