package triage

import (
	"context"
	"time"

	"github.com/northhealth/triage/internal/domain"
	"github.com/northhealth/triage/internal/logging"
	"github.com/northhealth/triage/internal/sentimentml"
)

// defaultMaxModelInputRunes caps text sent to the model sidecar. Longer
// complaints are truncated for the model call only; every other stage sees
// the full text.
const defaultMaxModelInputRunes = 500

// ModelClient is the capability the sentiment model sidecar provides.
type ModelClient interface {
	Analyze(ctx context.Context, text string) (*sentimentml.AnalyzeResponse, error)
	Health(ctx context.Context) error
}

// SentimentClassifier runs dual-path sentiment analysis: the model sidecar
// when it passed the startup probe, with silent fail-over to the rule path on
// any model error. Analyze never returns an error; the Method tag on the
// result is the only externally visible trace of which path ran.
type SentimentClassifier struct {
	client      ModelClient
	modelLoaded bool
	maxInput    int
	logger      logging.Logger
}

// NewSentimentClassifier probes the model sidecar once at construction. A nil
// client or a failed probe pins the classifier to the rule path for its
// lifetime; the service still starts. A non-positive maxInput falls back to
// the default.
func NewSentimentClassifier(ctx context.Context, client ModelClient, maxInput int, probeTimeout time.Duration, logger logging.Logger) *SentimentClassifier {
	if maxInput <= 0 {
		maxInput = defaultMaxModelInputRunes
	}
	c := &SentimentClassifier{
		client:   client,
		maxInput: maxInput,
		logger:   logger,
	}

	if client == nil {
		logger.Info("sentiment model disabled, using rule-based path")
		return c
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := client.Health(probeCtx); err != nil {
		logger.Warn("sentiment model probe failed, using rule-based path",
			logging.Error(err))
		return c
	}

	c.modelLoaded = true
	logger.Info("sentiment model probe succeeded, model path enabled")
	return c
}

// ModelLoaded reports whether the startup probe succeeded.
func (c *SentimentClassifier) ModelLoaded() bool {
	return c.modelLoaded
}

// Analyze classifies the sentiment of normalized text. It is total: any model
// failure falls back to the rule path rather than surfacing an error.
func (c *SentimentClassifier) Analyze(ctx context.Context, normalized string) domain.SentimentResult {
	if !c.modelLoaded {
		return ruleSentiment(normalized)
	}

	resp, err := c.client.Analyze(ctx, truncateRunes(normalized, c.maxInput))
	if err != nil {
		c.logger.Warn("sentiment model call failed, falling back to rules",
			logging.Error(err))
		return ruleSentiment(normalized)
	}

	label := resp.Label
	switch label {
	case domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral:
	default:
		c.logger.Warn("sentiment model returned unknown label, falling back to rules",
			logging.String("label", label))
		return ruleSentiment(normalized)
	}

	return domain.SentimentResult{
		Label:      label,
		Confidence: resp.Confidence,
		Method:     domain.SentimentMethodModel,
	}
}

// truncateRunes cuts s to at most n runes without splitting a multi-byte rune.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
