package scraper

import (
	"regexp"
	"strings"
)

var (
	lineBreaks = regexp.MustCompile(`[\r\n]+`)
	manySpaces = regexp.MustCompile(`\s+`)
)

// Sanitize prepares free text for pipe-delimited persistence: line breaks
// become spaces, the `|` delimiter is deleted, and whitespace collapses
// to single spaces. Guarantees one record per line downstream.
func Sanitize(text string) string {
	s := lineBreaks.ReplaceAllString(text, " ")
	s = strings.ReplaceAll(s, "|", "")
	s = manySpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
