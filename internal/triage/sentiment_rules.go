package triage

import (
	"strings"
	"unicode"

	"github.com/northhealth/triage/internal/domain"
)

// Rule-path sentiment lexicon. Kept small on purpose: the rule path is the
// always-available fallback, not a competitor to the model path.
var (
	positiveWords = []string{
		"good", "better", "great", "excellent", "happy",
		"relief", "improving", "fine", "well", "okay",
	}
	negativeWords = []string{
		"bad", "worse", "terrible", "awful", "pain", "hurt",
		"sick", "ill", "worried", "scared", "anxious", "depressed",
	}
	negationWords = map[string]bool{
		"not": true, "no": true, "never": true, "hardly": true, "barely": true,
	}
)

// negationLookback is how many preceding tokens a negation word can reach.
const negationLookback = 3

// ruleSentiment scores normalized text with lexicon counting. Negation flips
// asymmetrically: a negated positive word counts fully against ("not good" is
// clearly bad), while a negated negative word counts only half for ("no pain"
// is reassuring, not cheerful). Total function, never errors.
func ruleSentiment(normalized string) domain.SentimentResult {
	tokens := strings.Fields(normalized)

	var positive, negative float64
	for i, raw := range tokens {
		token := trimToken(raw)
		if token == "" {
			continue
		}

		negated := isNegated(tokens, i)

		switch {
		case containsWord(positiveWords, token):
			if negated {
				negative += 1.0
			} else {
				positive += 1.0
			}
		case containsWord(negativeWords, token):
			if negated {
				positive += 0.5
			} else {
				negative += 1.0
			}
		}
	}

	result := domain.SentimentResult{Method: domain.SentimentMethodRule}

	switch {
	case positive == negative:
		result.Label = domain.SentimentNeutral
		result.Confidence = 0.5
	case positive > negative:
		result.Label = domain.SentimentPositive
		result.Confidence = ruleConfidence(positive - negative)
	default:
		result.Label = domain.SentimentNegative
		result.Confidence = ruleConfidence(negative - positive)
	}

	return result
}

// ruleConfidence maps a score margin onto [0.6, 0.9]: a larger margin means
// more confidence, capped so the rule path never claims model-grade certainty.
func ruleConfidence(diff float64) float64 {
	return min(0.6+0.1*diff, 0.9)
}

// isNegated reports whether any of the few tokens before position i is a
// negation word.
func isNegated(tokens []string, i int) bool {
	start := i - negationLookback
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if negationWords[trimToken(tokens[j])] {
			return true
		}
	}
	return false
}

// trimToken strips surrounding punctuation so "pain," and "pain" match alike.
func trimToken(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsWord(words []string, token string) bool {
	for _, w := range words {
		if w == token {
			return true
		}
	}
	return false
}
