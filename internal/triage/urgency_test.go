//nolint:testpackage // Testing internal pipeline requires same package access
package triage

import (
	"testing"

	"github.com/northhealth/triage/internal/domain"
)

func TestUrgencyClassifier_Classify(t *testing.T) {
	classifier := NewUrgencyClassifier(0, 0)

	tests := []struct {
		name      string
		emergency domain.EmergencyCheck
		sentiment domain.SentimentResult
		scores    map[string]float64
		want      string
	}{
		{
			name:      "emergency overrides everything",
			emergency: domain.EmergencyCheck{IsEmergency: true},
			sentiment: domain.SentimentResult{Label: domain.SentimentPositive, Confidence: 0.9},
			scores:    domain.ZeroScores(),
			want:      domain.UrgencyEmergency,
		},
		{
			name:      "confident negative sentiment raises to medium",
			sentiment: domain.SentimentResult{Label: domain.SentimentNegative, Confidence: 0.8},
			scores:    domain.ZeroScores(),
			want:      domain.UrgencyMedium,
		},
		{
			name:      "negative sentiment at threshold stays low",
			sentiment: domain.SentimentResult{Label: domain.SentimentNegative, Confidence: 0.7},
			scores:    domain.ZeroScores(),
			want:      domain.UrgencyLow,
		},
		{
			name:      "high category score raises to medium",
			sentiment: domain.SentimentResult{Label: domain.SentimentNeutral, Confidence: 0.5},
			scores:    map[string]float64{domain.CategoryPhysicalSymptoms: 0.8},
			want:      domain.UrgencyMedium,
		},
		{
			name:      "category score at threshold stays low",
			sentiment: domain.SentimentResult{Label: domain.SentimentNeutral, Confidence: 0.5},
			scores:    map[string]float64{domain.CategoryPhysicalSymptoms: 0.7},
			want:      domain.UrgencyLow,
		},
		{
			name:      "nothing triggers defaults to low",
			sentiment: domain.SentimentResult{Label: domain.SentimentPositive, Confidence: 0.9},
			scores:    domain.ZeroScores(),
			want:      domain.UrgencyLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.emergency, tt.sentiment, tt.scores)
			if got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUrgencyClassifier_EmergencyTierOnlyFromOverride(t *testing.T) {
	classifier := NewUrgencyClassifier(0, 0)

	// Even maximal non-emergency signals must not reach the emergency tier.
	got := classifier.Classify(
		domain.EmergencyCheck{IsEmergency: false},
		domain.SentimentResult{Label: domain.SentimentNegative, Confidence: 1.0},
		map[string]float64{domain.CategoryPhysicalSymptoms: 1.0},
	)
	if got == domain.UrgencyEmergency {
		t.Fatal("emergency tier must be reachable only through the keyword override")
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name    string
		urgency string
		scores  map[string]float64
		want    string
	}{
		{
			name:    "emergency",
			urgency: domain.UrgencyEmergency,
			scores:  domain.ZeroScores(),
			want:    "Seek immediate medical attention or call emergency services",
		},
		{
			name:    "medium with dominant mental health",
			urgency: domain.UrgencyMedium,
			scores:  map[string]float64{domain.CategoryMentalHealth: 0.5},
			want:    "Consider speaking with a mental health professional soon",
		},
		{
			name:    "medium otherwise",
			urgency: domain.UrgencyMedium,
			scores:  map[string]float64{domain.CategoryPhysicalSymptoms: 0.8},
			want:    "Consider consulting a healthcare provider in the near future",
		},
		{
			name:    "low with mental health signal",
			urgency: domain.UrgencyLow,
			scores:  map[string]float64{domain.CategoryMentalHealth: 0.4},
			want:    "Consider speaking with a mental health professional",
		},
		{
			name:    "low with physical signal",
			urgency: domain.UrgencyLow,
			scores:  map[string]float64{domain.CategoryPhysicalSymptoms: 0.4},
			want:    "Monitor symptoms and consult a healthcare provider if they persist or worsen",
		},
		{
			name:    "low with no signal",
			urgency: domain.UrgencyLow,
			scores:  domain.ZeroScores(),
			want:    "Continue with healthy lifestyle practices and self-care",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommend(tt.urgency, tt.scores); got != tt.want {
				t.Errorf("Recommend() = %q, want %q", got, tt.want)
			}
		})
	}
}
