package usecase

import "regexp"

// Named pattern constants shared by the classifier, tokenizer, and
// extractors. Kept at package level and tested in isolation so line formats
// stay data, not inline literals.
var (
	// moneyPattern matches a monetary amount: one or more digits, a decimal
	// point or a single whitespace standing in for one (a common OCR
	// substitution), and exactly two fractional digits.
	moneyPattern = regexp.MustCompile(`\d+[.\s]\d{2}\b`)

	// negativeMoneyPattern matches refund/discount amounts with a leading
	// minus. Lines carrying one are never parsed as items or totals.
	negativeMoneyPattern = regexp.MustCompile(`-\s?\d+[.\s]\d{2}\b`)

	// dollarMoneyPattern matches the dollar-prefixed price lines that app
	// screenshots use for item prices.
	dollarMoneyPattern = regexp.MustCompile(`\$\s?\d+[.\s]\d{2}\b`)

	// quantityPattern matches quantity annotations like "Qty 2" or "qty: 3".
	quantityPattern = regexp.MustCompile(`(?i)\bqty\.?\s*:?\s*(\d+)`)

	// unitPricePattern matches per-unit price annotations ("$2.49/lb",
	// "multipack of 6") that sit between an item's name, price, and quantity
	// lines in screenshot layouts.
	unitPricePattern = regexp.MustCompile(`(?i)/\s?(lb|oz|fl|ea)\b|\bmultipack\b|\bqty\b`)

	// numericOnlyPattern matches name candidates made of digits and
	// separators only, which are OCR fragments rather than product names.
	numericOnlyPattern = regexp.MustCompile(`^[\d.,\s]+$`)
)
