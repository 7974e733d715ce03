package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	punctRe      = regexp.MustCompile(`[?!]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// SanitizeIn normalizes free text before it is stored or compared:
// lowercased, trimmed, question/exclamation marks stripped, runs of
// whitespace collapsed to a single space. Applied to usernames, author
// names and book titles so uniqueness is checked on the canonical form.
func SanitizeIn(text string) string {
	sanitized := strings.ToLower(text)
	sanitized = strings.TrimSpace(sanitized)
	sanitized = punctRe.ReplaceAllString(sanitized, "")
	sanitized = whitespaceRe.ReplaceAllString(sanitized, " ")
	return sanitized
}

var titleCaser = cases.Title(language.Und)

// SanitizeOut formats stored text for display: trimmed, whitespace
// collapsed, title-cased ("machado de assis" -> "Machado De Assis").
func SanitizeOut(text string) string {
	sanitized := strings.TrimSpace(text)
	sanitized = whitespaceRe.ReplaceAllString(sanitized, " ")
	return titleCaser.String(sanitized)
}
