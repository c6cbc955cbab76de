//nolint:testpackage // Testing internal pipeline requires same package access
package triage

import (
	"math"
	"testing"

	"github.com/northhealth/triage/internal/domain"
)

func TestRuleSentiment(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantLabel      string
		wantConfidence float64
	}{
		{
			name:           "no lexicon words is neutral",
			text:           "i have a cough",
			wantLabel:      domain.SentimentNeutral,
			wantConfidence: 0.5,
		},
		{
			name:           "single positive",
			text:           "feeling good today",
			wantLabel:      domain.SentimentPositive,
			wantConfidence: 0.7,
		},
		{
			name:           "single negative",
			text:           "the pain is bad",
			wantLabel:      domain.SentimentNegative,
			wantConfidence: 0.8,
		},
		{
			name:           "tie is neutral",
			text:           "good but bad",
			wantLabel:      domain.SentimentNeutral,
			wantConfidence: 0.5,
		},
		{
			name:           "negated positive counts fully negative",
			text:           "i am not good",
			wantLabel:      domain.SentimentNegative,
			wantConfidence: 0.7,
		},
		{
			name:           "negated negative counts half positive",
			text:           "no pain today",
			wantLabel:      domain.SentimentPositive,
			wantConfidence: 0.65,
		},
		{
			name:           "confidence capped at 0.9",
			text:           "great great great great great",
			wantLabel:      domain.SentimentPositive,
			wantConfidence: 0.9,
		},
		{
			name:           "punctuation trimmed from tokens",
			text:           "feeling good, much better!",
			wantLabel:      domain.SentimentPositive,
			wantConfidence: 0.8,
		},
		{
			name:           "negation out of lookback range",
			text:           "not once in recent memory felt good",
			wantLabel:      domain.SentimentPositive,
			wantConfidence: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ruleSentiment(tt.text)

			if got.Label != tt.wantLabel {
				t.Errorf("label = %s, want %s", got.Label, tt.wantLabel)
			}
			if math.Abs(got.Confidence-tt.wantConfidence) > 1e-9 {
				t.Errorf("confidence = %f, want %f", got.Confidence, tt.wantConfidence)
			}
			if got.Method != domain.SentimentMethodRule {
				t.Errorf("method = %s, want %s", got.Method, domain.SentimentMethodRule)
			}
		})
	}
}

func TestRuleSentiment_NegationAsymmetry(t *testing.T) {
	// "not good" lands a full point against, "no pain" only half a point
	// for, so the negated negative stays closer to neutral.
	negatedPositive := ruleSentiment("not good")
	negatedNegative := ruleSentiment("no pain")

	if negatedPositive.Label != domain.SentimentNegative {
		t.Errorf("negated positive should be negative, got %s", negatedPositive.Label)
	}
	if negatedNegative.Label != domain.SentimentPositive {
		t.Errorf("negated negative should be positive, got %s", negatedNegative.Label)
	}
	if negatedNegative.Confidence >= negatedPositive.Confidence {
		t.Errorf("negated negative confidence %f should be below negated positive %f",
			negatedNegative.Confidence, negatedPositive.Confidence)
	}
}

func TestRuleSentiment_EmptyText(t *testing.T) {
	got := ruleSentiment("")
	if got.Label != domain.SentimentNeutral || got.Confidence != 0.5 {
		t.Errorf("empty text should be neutral 0.5, got %s/%f", got.Label, got.Confidence)
	}
}
