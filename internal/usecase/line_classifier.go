package usecase

import "strings"

// LineClass labels a single line of OCR text.
type LineClass int

const (
	LineNoise LineClass = iota
	LineTax
	LineSubtotal
	LineGrandTotal
	LineOrderTotal
	LineItemCandidate
)

// String returns a human-readable label for logging.
func (c LineClass) String() string {
	switch c {
	case LineTax:
		return "tax"
	case LineSubtotal:
		return "subtotal"
	case LineGrandTotal:
		return "grand_total"
	case LineOrderTotal:
		return "order_total"
	case LineItemCandidate:
		return "item_candidate"
	default:
		return "noise"
	}
}

// DefaultReceiptStoplist returns the non-item keywords observed on physical
// receipts: payment methods, store/employee name fragments, and promotional
// banners. Retailer layouts vary, so the list is configuration data.
func DefaultReceiptStoplist() []string {
	return []string{
		"savings", "payment", "change", "cash", "credit",
		"debit", "manager", "store", "ocala",
	}
}

// ClassifierConfig holds configuration for the line classifier.
type ClassifierConfig struct {
	Stoplist []string
}

// LineClassifier assigns exactly one LineClass per raw OCR line. Rule order
// matters: "total" substrings appear inside noise lines, so tax and totals
// detection must run before the generic item fallback.
type LineClassifier struct {
	stoplist []string
}

// NewLineClassifier creates a classifier. An empty stoplist falls back to
// the default receipt stoplist.
func NewLineClassifier(config ClassifierConfig) *LineClassifier {
	stop := config.Stoplist
	if len(stop) == 0 {
		stop = DefaultReceiptStoplist()
	}

	lowered := make([]string, len(stop))
	for i, s := range stop {
		lowered[i] = strings.ToLower(s)
	}

	return &LineClassifier{stoplist: lowered}
}

// Classify labels one line. First matching rule wins.
func (c *LineClassifier) Classify(line string) LineClass {
	lower := strings.ToLower(line)

	// Promotions and negative amounts are discounts, never items or totals.
	if strings.Contains(lower, "promotion") || negativeMoneyPattern.MatchString(line) {
		return LineNoise
	}

	if strings.Contains(lower, "tax") && !strings.Contains(lower, "total") {
		return LineTax
	}
	if strings.Contains(lower, "subtotal") {
		return LineSubtotal
	}
	if strings.Contains(lower, "grand total") {
		return LineGrandTotal
	}
	if strings.Contains(lower, "order total") {
		return LineOrderTotal
	}

	for _, stop := range c.stoplist {
		if strings.Contains(lower, stop) {
			return LineNoise
		}
	}

	if moneyPattern.MatchString(line) {
		return LineItemCandidate
	}

	return LineNoise
}
