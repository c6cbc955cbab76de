package triage

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/northhealth/triage/internal/domain"
	"github.com/northhealth/triage/internal/logging"
	"github.com/northhealth/triage/internal/telemetry"
)

// Pipeline orchestrates one full analysis: normalize, then emergency scan,
// category scoring and sentiment (mutually independent), then urgency, advice
// and the recommendation line.
type Pipeline struct {
	emergency *EmergencyDetector
	category  *CategoryDetector
	sentiment *SentimentClassifier
	urgency   *UrgencyClassifier
	advice    *AdviceSelector
	telemetry *telemetry.Provider
	logger    logging.Logger
}

// NewPipeline wires the analysis stages together. telemetry may be nil.
func NewPipeline(
	emergency *EmergencyDetector,
	category *CategoryDetector,
	sentiment *SentimentClassifier,
	urgency *UrgencyClassifier,
	advice *AdviceSelector,
	tel *telemetry.Provider,
	logger logging.Logger,
) *Pipeline {
	return &Pipeline{
		emergency: emergency,
		category:  category,
		sentiment: sentiment,
		urgency:   urgency,
		advice:    advice,
		telemetry: tel,
		logger:    logger,
	}
}

// Analyze runs the full pipeline over one text. On a validation failure it
// returns a safe-default result alongside a *domain.ValidationError so
// consumers always receive a fully populated record.
func (p *Pipeline) Analyze(ctx context.Context, text string) (*domain.TriageResult, error) {
	start := time.Now()

	ctx, span := p.telemetry.StartSpan(ctx, "triage.analyze",
		attribute.Int("text_length", len(text)))
	defer span.End()

	normalized := NormalizeText(text)
	if normalized == "" {
		p.telemetry.RecordAnalysisFailure(ctx, "empty_text")
		return p.invalidResult(text, start), domain.NewValidationError(domain.ErrEmptyText.Error())
	}

	scanStart := time.Now()
	emergency := p.emergency.Detect(normalized)
	scores := p.category.Detect(normalized)
	p.telemetry.RecordKeywordScan(ctx, time.Since(scanStart))

	sentiment := p.sentiment.Analyze(ctx, normalized)
	failover := p.sentiment.ModelLoaded() && sentiment.Method == domain.SentimentMethodRule
	p.telemetry.RecordSentiment(ctx, sentiment.Method, failover)

	urgency := p.urgency.Classify(emergency, sentiment, scores)

	result := &domain.TriageResult{
		OriginalText:     text,
		NormalizedText:   normalized,
		CategoryScores:   scores,
		Emergency:        emergency,
		Sentiment:        sentiment,
		UrgencyLevel:     urgency,
		Advice:           p.advice.Select(normalized, scores),
		Recommendation:   Recommend(urgency, scores),
		AnalysisMethod:   p.analysisMethod(),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		AnalyzedAt:       time.Now().UTC(),
	}

	if emergency.IsEmergency {
		p.telemetry.RecordEmergency(ctx)
	}
	p.telemetry.RecordAnalysis(ctx, urgency, result.AnalysisMethod, time.Since(start))

	p.logger.Debug("analysis complete",
		logging.String("urgency", urgency),
		logging.String("sentiment", sentiment.Label),
		logging.Bool("emergency", emergency.IsEmergency),
		logging.Int64("duration_ms", result.ProcessingTimeMs))

	return result, nil
}

// AnalyzeBatch runs Analyze over each text in order. A failure on one item
// becomes a per-item error tagged with its index; remaining items still run.
func (p *Pipeline) AnalyzeBatch(ctx context.Context, texts []string) []domain.ItemResult {
	p.telemetry.RecordBatchSize(len(texts))

	results := make([]domain.ItemResult, len(texts))
	for i, text := range texts {
		result, err := p.Analyze(ctx, text)
		if err != nil {
			results[i] = domain.ItemResult{Index: i, Error: domain.NewItemError(i, text, err)}
			continue
		}
		results[i] = domain.ItemResult{Index: i, Result: result}
	}
	return results
}

// ModelLoaded reports whether the sentiment model path is active.
func (p *Pipeline) ModelLoaded() bool {
	return p.sentiment.ModelLoaded()
}

func (p *Pipeline) analysisMethod() string {
	if p.sentiment.ModelLoaded() {
		return domain.MethodHybrid
	}
	return domain.MethodRuleBased
}

// invalidResult builds the safe-default record returned with a ValidationError:
// every analysis field is present at its neutral value.
func (p *Pipeline) invalidResult(text string, start time.Time) *domain.TriageResult {
	return &domain.TriageResult{
		OriginalText:   text,
		NormalizedText: "",
		CategoryScores: domain.ZeroScores(),
		Emergency:      domain.EmergencyCheck{MatchedKeywords: []string{}},
		Sentiment: domain.SentimentResult{
			Label:      domain.SentimentNeutral,
			Confidence: 0.5,
			Method:     domain.SentimentMethodRule,
		},
		UrgencyLevel:     domain.UrgencyLow,
		Advice:           []string{"Please describe your health concern so relevant advice can be provided"},
		Recommendation:   "Please provide more details about your health concern",
		AnalysisMethod:   p.analysisMethod(),
		Error:            "please provide a valid text description of your health concern",
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		AnalyzedAt:       time.Now().UTC(),
	}
}
