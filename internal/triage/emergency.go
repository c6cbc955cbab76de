package triage

import (
	"sort"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/northhealth/triage/internal/domain"
	"github.com/northhealth/triage/internal/logging"
)

// EmergencyDetector scans normalized text against the emergency phrase set
// using an Aho-Corasick automaton so the scan stays O(n+m) regardless of how
// many phrases the set carries. Every match is collected (no early exit) so
// callers can show which phrases triggered the override.
type EmergencyDetector struct {
	matcher  *ahocorasick.Matcher
	keywords []string
	logger   logging.Logger
}

// NewEmergencyDetector builds the automaton from the emergency keyword set.
func NewEmergencyDetector(keywords []string, logger logging.Logger) *EmergencyDetector {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if k := NormalizeText(kw); k != "" {
			normalized = append(normalized, k)
		}
	}

	var matcher *ahocorasick.Matcher
	if len(normalized) > 0 {
		matcher = ahocorasick.NewStringMatcher(normalized)
	}

	logger.Info("emergency detector initialized",
		logging.Int("keywords", len(normalized)))

	return &EmergencyDetector{
		matcher:  matcher,
		keywords: normalized,
		logger:   logger,
	}
}

// Detect returns the emergency check for the normalized text. Matched
// keywords are reported in keyword-set order.
func (d *EmergencyDetector) Detect(normalized string) domain.EmergencyCheck {
	check := domain.EmergencyCheck{MatchedKeywords: []string{}}

	if d.matcher == nil || normalized == "" {
		return check
	}

	hits := d.matcher.Match([]byte(normalized))
	if len(hits) == 0 {
		return check
	}

	// The automaton reports hits in text order; re-sort by dictionary index
	// so the output order matches the keyword set.
	sort.Ints(hits)
	for _, idx := range hits {
		if idx >= 0 && idx < len(d.keywords) {
			check.MatchedKeywords = append(check.MatchedKeywords, d.keywords[idx])
		}
	}
	check.IsEmergency = len(check.MatchedKeywords) > 0

	if check.IsEmergency {
		d.logger.Warn("emergency keywords detected",
			logging.Strings("matched_keywords", check.MatchedKeywords))
	}

	return check
}
