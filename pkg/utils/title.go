package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	disambigSuffix = regexp.MustCompile(`(?i)\s*\(disambiguation\)$`)
	pageSuffix     = regexp.MustCompile(`(?i)\s*\(page\)$`)
)

// FormatTitle turns a wiki-style page title into a display title:
// underscores become spaces, known suffixes are stripped, and each
// word is capitalized.
func FormatTitle(title string) string {
	if title == "" {
		return ""
	}

	formatted := strings.ReplaceAll(title, "_", " ")
	formatted = disambigSuffix.ReplaceAllString(formatted, "")
	formatted = pageSuffix.ReplaceAllString(formatted, "")

	words := strings.Split(formatted, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		// Capitalize the first rune, not the first byte
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
