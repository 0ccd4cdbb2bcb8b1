package segment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Patterns that mark a paragraph as a heading. Checked against the
// trimmed text, first match wins.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.?\s+[A-Z]`),      // "1. Introduction" or "1 Introduction"
	regexp.MustCompile(`^[A-Z][A-Z\s]{3,}$`),   // ALL CAPS line
	regexp.MustCompile(`^Chapter\s+\d+`),       // Chapter X
	regexp.MustCompile(`^Section\s+\d+`),       // Section X
	regexp.MustCompile(`^[IVXLCDM]+\.\s+[A-Z]`), // "IV. Results"
}

// IsHeading reports whether a paragraph likely functions as a section
// title. Pure and total: any string input, no side effects.
func IsHeading(text string) bool {
	if utf8.RuneCountInString(text) > 200 {
		return false
	}

	trimmed := strings.TrimSpace(text)
	for _, pat := range headingPatterns {
		if pat.MatchString(trimmed) {
			return true
		}
	}

	// Short and mostly uppercase also counts.
	if len(strings.Fields(text)) <= 10 {
		total := utf8.RuneCountInString(text)
		if total == 0 {
			return false
		}
		upper := 0
		for _, r := range text {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if float64(upper)/float64(total) > 0.6 {
			return true
		}
	}

	return false
}
