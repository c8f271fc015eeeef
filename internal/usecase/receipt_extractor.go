package usecase

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

// minReceiptNameLen: trimmed name candidates at or below this length are OCR
// fragments, not products.
const minReceiptNameLen = 3

// ReceiptExtractor assembles single-line item records from linear
// physical-receipt text. No cross-line lookback and no deduplication: a
// product rung up twice legitimately produces two records.
type ReceiptExtractor struct {
	classifier *LineClassifier
	debug      bool
}

// NewReceiptExtractor creates a receipt extractor around a line classifier.
func NewReceiptExtractor(classifier *LineClassifier, debug bool) *ReceiptExtractor {
	return &ReceiptExtractor{
		classifier: classifier,
		debug:      debug,
	}
}

// Extract parses one receipt's OCR text into item records plus order totals.
// Entirely absent text is a caller contract violation; a receipt with no
// parseable item lines is a valid zero-item result.
func (e *ReceiptExtractor) Extract(text string) (*domain.Extraction, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}

	result := &domain.Extraction{Totals: domain.OrderTotals{}}

	for _, line := range strings.Split(text, "\n") {
		class := e.classifier.Classify(line)

		switch class {
		case LineTax:
			e.captureTotal(result.Totals, domain.TotalTax, line)
		case LineSubtotal:
			e.captureTotal(result.Totals, domain.TotalSubtotal, line)
		case LineGrandTotal:
			e.captureTotal(result.Totals, domain.TotalGrandTotal, line)
		case LineOrderTotal:
			e.captureTotal(result.Totals, domain.TotalOrderTotal, line)
		case LineItemCandidate:
			token, ok := TokenizePrice(line)
			if !ok {
				continue
			}
			name := strings.TrimSpace(line[:token.Start])
			if len(name) <= minReceiptNameLen {
				continue
			}
			result.Items = append(result.Items, domain.ItemRecord{
				ID:        uuid.New(),
				Name:      name,
				UnitPrice: token.Amount,
				Quantity:  1,
			})
			if e.debug {
				log.Printf("[EXTRACT] item %q price %s", name, token.Amount)
			}
		}
	}

	return result, nil
}

// captureTotal records the line's amount under key; the first match per key
// wins. Totals lines without a parseable amount are skipped silently.
func (e *ReceiptExtractor) captureTotal(totals domain.OrderTotals, key domain.TotalKey, line string) {
	token, ok := TokenizePrice(line)
	if !ok {
		return
	}
	if totals.SetOnce(key, token.Amount) && e.debug {
		log.Printf("[EXTRACT] total %s = %s", key, token.Amount)
	}
}
