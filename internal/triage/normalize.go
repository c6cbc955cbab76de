// Package triage implements the health complaint triage pipeline: text
// normalization, keyword category scoring, emergency override detection,
// dual-path sentiment analysis, urgency tiering, and advice selection.
package triage

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText lowercases the input, trims leading/trailing whitespace, and
// collapses internal whitespace runs to a single space. Accented characters
// are folded to their base form so keyword matching is accent-insensitive.
// This is a total function: any input yields a string, and empty output is
// itself meaningful downstream (it fails validation one level up).
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	s := removeAccents(text)
	s = strings.ToLower(s)

	return strings.Join(strings.Fields(s), " ")
}

// removeAccents strips combining marks: NFD decomposition, drop Mn runes,
// NFC recomposition. ASCII text passes through unchanged.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
