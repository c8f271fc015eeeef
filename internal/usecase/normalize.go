package usecase

import (
	"regexp"
	"strings"
)

var (
	crlfPattern       = regexp.MustCompile(`\r\n?`)
	tabPattern        = regexp.MustCompile(`\t+`)
	multiSpacePattern = regexp.MustCompile(` {2,}`)
	multiBlankPattern = regexp.MustCompile(`\n{3,}`)
)

// NormalizeOCRText collapses noisy whitespace from the OCR engine while
// keeping line breaks intact. Runs of spaces collapse to a single space, not
// zero, because the price tokenizer treats a lone embedded space as a
// possible decimal-point substitution.
func NormalizeOCRText(s string) string {
	if s == "" {
		return s
	}

	s = crlfPattern.ReplaceAllString(s, "\n")
	s = tabPattern.ReplaceAllString(s, " ")
	s = multiSpacePattern.ReplaceAllString(s, " ")
	s = multiBlankPattern.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}
