package triage

import (
	"strings"

	"github.com/northhealth/triage/internal/logging"
	"github.com/northhealth/triage/internal/taxonomy"
)

// Category scoring constants.
const (
	// wholeWordBonus rewards exact-word hits over partial substring hits,
	// e.g. a standalone "ache" scores higher than "ache" inside "headache".
	wholeWordBonus = 0.5
	// defaultSaturationRatio: matching ~30% of a category's keyword list
	// (after whole-word bonuses) already saturates its score to 1.0,
	// keeping the detector responsive to partial matches.
	defaultSaturationRatio = 0.3
)

// CategoryDetector scores each taxonomy category via weighted substring
// matching. Scores are independent per category; a text may score high on
// several categories at once.
type CategoryDetector struct {
	taxonomy        *taxonomy.Taxonomy
	saturationRatio float64
	logger          logging.Logger
}

// NewCategoryDetector creates a detector over the given taxonomy.
// A non-positive saturationRatio falls back to the default.
func NewCategoryDetector(tax *taxonomy.Taxonomy, saturationRatio float64, logger logging.Logger) *CategoryDetector {
	if saturationRatio <= 0 {
		saturationRatio = defaultSaturationRatio
	}
	return &CategoryDetector{
		taxonomy:        tax,
		saturationRatio: saturationRatio,
		logger:          logger,
	}
}

// Detect returns one score in [0.0, 1.0] per taxonomy category for the
// normalized text. A score of exactly 0.0 means no keyword matched.
func (d *CategoryDetector) Detect(normalized string) map[string]float64 {
	scores := make(map[string]float64, len(d.taxonomy.Categories))

	// Space-wrap once so whole-word checks work at the text boundaries.
	padded := " " + normalized + " "

	for i := range d.taxonomy.Categories {
		cat := d.taxonomy.Categories[i]
		scores[cat.Name] = d.scoreCategory(normalized, padded, cat.Keywords)
	}

	d.logger.Debug("category detection complete",
		logging.Any("scores", scores))

	return scores
}

// scoreCategory counts weighted keyword hits and normalizes against the
// saturation point.
func (d *CategoryDetector) scoreCategory(normalized, padded string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0.0
	}

	var matches float64
	for _, keyword := range keywords {
		if !strings.Contains(normalized, keyword) {
			continue
		}
		matches++
		if strings.Contains(padded, " "+keyword+" ") {
			matches += wholeWordBonus
		}
	}

	if matches == 0 {
		return 0.0
	}

	score := matches / (float64(len(keywords)) * d.saturationRatio)
	return min(score, 1.0)
}

// DominantCategory returns the highest-scoring category and its score.
// Ties resolve to the earlier category in taxonomy order.
func DominantCategory(tax *taxonomy.Taxonomy, scores map[string]float64) (string, float64) {
	var best string
	var bestScore float64

	for i := range tax.Categories {
		name := tax.Categories[i].Name
		if score, ok := scores[name]; ok && score > bestScore {
			best = name
			bestScore = score
		}
	}

	return best, bestScore
}

// MaxScore returns the highest score in the vector, or 0.0 for an empty one.
func MaxScore(scores map[string]float64) float64 {
	var maxScore float64
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	return maxScore
}
