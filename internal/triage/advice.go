package triage

import (
	"strings"

	"github.com/northhealth/triage/internal/logging"
	"github.com/northhealth/triage/internal/taxonomy"
)

const (
	// defaultAdviceThreshold: the dominant category must clear this score
	// before its catalog is consulted at all.
	defaultAdviceThreshold = 0.3
	// maxAdvicePerSymptom caps how many items a matched symptom contributes.
	maxAdvicePerSymptom = 3
	// maxAdviceItems caps the final advice list.
	maxAdviceItems = 5
)

// AdviceSelector picks advice greedily from the single highest-scoring
// category. A text matching two categories strongly still receives advice
// only from the winner.
type AdviceSelector struct {
	taxonomy  *taxonomy.Taxonomy
	threshold float64
	logger    logging.Logger
}

// NewAdviceSelector creates a selector over the given taxonomy. A
// non-positive threshold falls back to the default.
func NewAdviceSelector(tax *taxonomy.Taxonomy, threshold float64, logger logging.Logger) *AdviceSelector {
	if threshold <= 0 {
		threshold = defaultAdviceThreshold
	}
	return &AdviceSelector{
		taxonomy:  tax,
		threshold: threshold,
		logger:    logger,
	}
}

// Select returns an ordered, deduplicated advice list for the normalized text
// and its score vector. Never returns an empty list: when no category clears
// the threshold, or the winner has no catalog entry, the generic list applies.
func (s *AdviceSelector) Select(normalized string, scores map[string]float64) []string {
	category, score := DominantCategory(s.taxonomy, scores)
	if category == "" || score <= s.threshold {
		return dedupeCap(s.taxonomy.Generic, maxAdviceItems)
	}

	entry, ok := s.taxonomy.AdviceFor(category)
	if !ok || len(entry.Symptoms) == 0 {
		s.logger.Debug("no advice catalog for category, using generic",
			logging.String("category", category))
		return dedupeCap(s.taxonomy.Generic, maxAdviceItems)
	}

	// First symptom key found in the text wins, in catalog order.
	for i := range entry.Symptoms {
		if strings.Contains(normalized, entry.Symptoms[i].Symptom) {
			return dedupeCap(takeN(entry.Symptoms[i].Advice, maxAdvicePerSymptom), maxAdviceItems)
		}
	}

	// Best guess: the catalog's first entry rather than empty advice.
	return dedupeCap(takeN(entry.Symptoms[0].Advice, maxAdvicePerSymptom), maxAdviceItems)
}

func takeN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// dedupeCap removes duplicates preserving first occurrence and caps length.
func dedupeCap(items []string, limit int) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
