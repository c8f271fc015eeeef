package usecase

import (
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

const (
	// Name candidates shorter than this trigger backward lookback.
	minScreenshotNameLen = 2
	// Single-word names shorter than this are stray OCR tokens.
	minSingleWordNameLen = 5

	defaultLookbackLines  = 3
	defaultLookaheadLines = 4
)

// DefaultScreenshotStoplist returns the non-item phrases that app
// screenshots interleave between items: delivery-status banners, totals
// summaries, and payment-method lines.
func DefaultScreenshotStoplist() []string {
	return []string{
		"delivered", "arriving", "out for delivery", "order placed",
		"subtotal", "driver tip", "total", "tax", "payment",
		"visa", "mastercard", "credit", "debit", "cash", "savings",
	}
}

// ScreenshotExtractorConfig holds configuration for the screenshot extractor.
type ScreenshotExtractorConfig struct {
	Stoplist       []string
	LookbackLines  int
	LookaheadLines int
	Debug          bool
}

// ScreenshotExtractor assembles possibly multi-line item records from
// app-screenshot OCR text. Screenshot layouts interleave item name, price,
// per-unit annotation, and quantity across separate lines in varying order,
// so the extractor works with bounded lookback/lookahead windows and
// defaults on failure instead of exact format matching.
type ScreenshotExtractor struct {
	stoplist  []string
	lookback  int
	lookahead int
	debug     bool
}

// NewScreenshotExtractor creates a screenshot extractor. Zero window sizes
// and an empty stoplist fall back to the defaults.
func NewScreenshotExtractor(config ScreenshotExtractorConfig) *ScreenshotExtractor {
	stop := config.Stoplist
	if len(stop) == 0 {
		stop = DefaultScreenshotStoplist()
	}
	lowered := make([]string, len(stop))
	for i, s := range stop {
		lowered[i] = strings.ToLower(s)
	}

	lookback := config.LookbackLines
	if lookback <= 0 {
		lookback = defaultLookbackLines
	}
	lookahead := config.LookaheadLines
	if lookahead <= 0 {
		lookahead = defaultLookaheadLines
	}

	return &ScreenshotExtractor{
		stoplist:  lowered,
		lookback:  lookback,
		lookahead: lookahead,
		debug:     config.Debug,
	}
}

// Extract parses one or more screenshot OCR blocks, concatenated in upload
// order, into item records plus whatever totals lines were found.
func (e *ScreenshotExtractor) Extract(blocks []string) (*domain.Extraction, error) {
	lines := combineBlocks(blocks)
	if len(lines) == 0 {
		return nil, domain.ErrEmptyInput
	}

	result := &domain.Extraction{Totals: domain.OrderTotals{}}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if strings.Contains(lower, "promotion") || negativeMoneyPattern.MatchString(line) {
			continue
		}
		if e.stoplisted(lower) {
			e.captureTotal(result.Totals, line, lower)
			continue
		}
		token, ok := TokenizeDollarPrice(line)
		if !ok {
			continue
		}

		name := strings.TrimSpace(line[:token.Start])
		// Standalone per-unit annotations ("$2.49/lb") carry a price but are
		// not items. A combined line that leads with a product name still is,
		// so only discard when nothing usable precedes the price.
		if unitPricePattern.MatchString(line) && !e.acceptableName(name) {
			continue
		}
		if len(name) < minScreenshotNameLen {
			name = e.lookbackName(lines, i, name)
		}
		if !e.acceptableName(name) {
			if e.debug {
				log.Printf("[EXTRACT] rejected name candidate %q at line %d", name, i)
			}
			continue
		}

		qty, consumed := e.lookaheadQuantity(lines, i)
		result.Items = append(result.Items, domain.ItemRecord{
			ID:        uuid.New(),
			Name:      name,
			UnitPrice: token.Amount,
			Quantity:  qty,
		})
		if e.debug {
			log.Printf("[EXTRACT] item %q price %s qty %d", name, token.Amount, qty)
		}
		i = consumed
	}

	return result, nil
}

// combineBlocks splits each OCR block on line breaks and concatenates them
// into one logical line sequence, preserving upload order.
func combineBlocks(blocks []string) []string {
	var lines []string
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		lines = append(lines, strings.Split(block, "\n")...)
	}
	return lines
}

func (e *ScreenshotExtractor) stoplisted(lower string) bool {
	for _, stop := range e.stoplist {
		if strings.Contains(lower, stop) {
			return true
		}
	}
	return false
}

// lookbackName reconstructs a name that OCR split across lines: it scans up
// to the lookback window above the price line, skipping stoplisted, blank,
// and per-unit annotation lines, stopping at another monetary line (the
// previous item's price), and prepends the acceptable fragments in document
// order.
func (e *ScreenshotExtractor) lookbackName(lines []string, priceIdx int, candidate string) string {
	var fragments []string
	for j := priceIdx - 1; j >= 0 && j >= priceIdx-e.lookback; j-- {
		prev := strings.TrimSpace(lines[j])
		if prev == "" {
			continue
		}
		if moneyPattern.MatchString(prev) {
			break
		}
		if e.stoplisted(strings.ToLower(prev)) || unitPricePattern.MatchString(prev) {
			continue
		}
		fragments = append([]string{prev}, fragments...)
	}

	if len(fragments) == 0 {
		return candidate
	}
	joined := strings.Join(fragments, " ")
	if candidate == "" {
		return joined
	}
	return joined + " " + candidate
}

// acceptableName guards against mis-split totals and stray OCR tokens.
func (e *ScreenshotExtractor) acceptableName(name string) bool {
	if len(name) < minScreenshotNameLen {
		return false
	}
	if strings.HasPrefix(name, "$") {
		return false
	}
	if numericOnlyPattern.MatchString(name) {
		return false
	}
	words := strings.Fields(name)
	if len(words) == 1 && len(words[0]) < minSingleWordNameLen {
		return false
	}
	return true
}

// lookaheadQuantity scans up to the lookahead window below the price line
// for a quantity annotation. Another monetary line or a stoplisted line ends
// the scan (it signals the next item or the totals block); per-unit
// annotation lines are skipped over. Default quantity is 1. Returns the
// quantity and the index of the last line consumed so the cursor can advance
// past it.
func (e *ScreenshotExtractor) lookaheadQuantity(lines []string, priceIdx int) (int, int) {
	for j := priceIdx + 1; j < len(lines) && j <= priceIdx+e.lookahead; j++ {
		next := strings.TrimSpace(lines[j])
		if next == "" {
			continue
		}
		if m := quantityPattern.FindStringSubmatch(next); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n, j
			}
			return 1, j
		}
		if unitPricePattern.MatchString(next) {
			continue
		}
		if moneyPattern.MatchString(next) {
			break
		}
		if e.stoplisted(strings.ToLower(next)) {
			break
		}
	}
	return 1, priceIdx
}

// captureTotal records the amount carried by a stoplisted summary line, if
// any, under the matching totals key. First match per key wins.
func (e *ScreenshotExtractor) captureTotal(totals domain.OrderTotals, line, lower string) {
	token, ok := TokenizeDollarPrice(line)
	if !ok {
		if token, ok = TokenizePrice(line); !ok {
			return
		}
	}

	switch {
	case strings.Contains(lower, "driver tip"):
		totals.SetOnce(domain.TotalDriverTip, token.Amount)
	case strings.Contains(lower, "subtotal"):
		totals.SetOnce(domain.TotalSubtotal, token.Amount)
	case strings.Contains(lower, "grand total"):
		totals.SetOnce(domain.TotalGrandTotal, token.Amount)
	case strings.Contains(lower, "tax") && !strings.Contains(lower, "total"):
		totals.SetOnce(domain.TotalTax, token.Amount)
	case strings.Contains(lower, "total"):
		totals.SetOnce(domain.TotalOrderTotal, token.Amount)
	}
}
