package triage

import (
	"github.com/northhealth/triage/internal/domain"
)

// Urgency decision thresholds.
const (
	// defaultSentimentUrgencyThreshold: negative sentiment must be at least
	// this confident before it alone raises urgency to medium.
	defaultSentimentUrgencyThreshold = 0.7
	// defaultScoreUrgencyThreshold: a category score above this raises
	// urgency to medium.
	defaultScoreUrgencyThreshold = 0.7
)

// Recommendation mental-health routing thresholds.
const (
	mediumMentalHealthCutoff = 0.4
	lowCategoryCutoff        = 0.3
)

// UrgencyClassifier assigns the urgency tier with a fixed first-match rule
// order. The emergency rule is checked first and is the only path to the
// emergency tier.
type UrgencyClassifier struct {
	sentimentThreshold float64
	scoreThreshold     float64
}

// NewUrgencyClassifier creates a classifier; non-positive thresholds fall
// back to the defaults.
func NewUrgencyClassifier(sentimentThreshold, scoreThreshold float64) *UrgencyClassifier {
	if sentimentThreshold <= 0 {
		sentimentThreshold = defaultSentimentUrgencyThreshold
	}
	if scoreThreshold <= 0 {
		scoreThreshold = defaultScoreUrgencyThreshold
	}
	return &UrgencyClassifier{
		sentimentThreshold: sentimentThreshold,
		scoreThreshold:     scoreThreshold,
	}
}

// Classify returns the urgency tier. First matching rule wins.
func (c *UrgencyClassifier) Classify(emergency domain.EmergencyCheck, sentiment domain.SentimentResult, scores map[string]float64) string {
	switch {
	case emergency.IsEmergency:
		return domain.UrgencyEmergency
	case sentiment.Label == domain.SentimentNegative && sentiment.Confidence > c.sentimentThreshold:
		return domain.UrgencyMedium
	case MaxScore(scores) > c.scoreThreshold:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

// Recommend maps (urgency, scores) to a single recommendation line. Total and
// side-effect free.
func Recommend(urgency string, scores map[string]float64) string {
	mentalHealth := scores[domain.CategoryMentalHealth]

	switch {
	case urgency == domain.UrgencyEmergency:
		return "Seek immediate medical attention or call emergency services"
	case urgency == domain.UrgencyMedium && mentalHealth > mediumMentalHealthCutoff:
		return "Consider speaking with a mental health professional soon"
	case urgency == domain.UrgencyMedium:
		return "Consider consulting a healthcare provider in the near future"
	case mentalHealth > lowCategoryCutoff:
		return "Consider speaking with a mental health professional"
	case scores[domain.CategoryPhysicalSymptoms] > lowCategoryCutoff:
		return "Monitor symptoms and consult a healthcare provider if they persist or worsen"
	default:
		return "Continue with healthy lifestyle practices and self-care"
	}
}
