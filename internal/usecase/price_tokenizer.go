package usecase

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyToken is a normalized monetary amount extracted from a line, plus the
// offset where the match started so callers can slice the preceding text as
// a name candidate.
type MoneyToken struct {
	Amount decimal.Decimal
	Start  int
}

// TokenizePrice extracts the first monetary amount on a line. A single
// whitespace character standing in for the decimal point is normalized
// before parsing. Lines with several amounts are not disambiguated further:
// the first match is the primary price.
func TokenizePrice(line string) (MoneyToken, bool) {
	return tokenizeWith(moneyPattern, line)
}

// TokenizeDollarPrice extracts the first dollar-prefixed amount, the format
// app screenshots use for item prices.
func TokenizeDollarPrice(line string) (MoneyToken, bool) {
	return tokenizeWith(dollarMoneyPattern, line)
}

func tokenizeWith(pattern *regexp.Regexp, line string) (MoneyToken, bool) {
	loc := pattern.FindStringIndex(line)
	if loc == nil {
		return MoneyToken{}, false
	}

	raw := strings.TrimLeft(line[loc[0]:loc[1]], "$ ")

	// OCR sometimes reads the decimal point as a space.
	if idx := strings.IndexAny(raw, " \t"); idx >= 0 {
		raw = raw[:idx] + "." + raw[idx+1:]
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return MoneyToken{}, false
	}

	return MoneyToken{Amount: amount, Start: loc[0]}, true
}
