package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/northhealth/triage/internal/telemetry"
)

// providerOnce ensures we only create one Provider per test run to avoid
// duplicate Prometheus metric registration errors from promauto's global registry
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
	if provider.Handler() == nil {
		t.Error("expected non-nil metrics handler")
	}
}

func TestRecordAnalysis(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordAnalysis(ctx, "low", "rule_based", 10*time.Millisecond)
	provider.RecordAnalysis(ctx, "emergency", "hybrid", 5*time.Millisecond)
	provider.RecordAnalysisFailure(ctx, "empty_text")
	provider.RecordEmergency(ctx)
	provider.RecordSentiment(ctx, "model-based", false)
	provider.RecordSentiment(ctx, "rule-based", true)
	provider.RecordKeywordScan(ctx, time.Millisecond)
	provider.RecordBatchSize(5)
	provider.SetActiveWorkers(4)
}

func TestNilProviderIsSafe(t *testing.T) {
	var provider *telemetry.Provider
	ctx := context.Background()

	// Nil provider must be a no-op, not a panic.
	provider.RecordAnalysis(ctx, "low", "rule_based", time.Millisecond)
	provider.RecordAnalysisFailure(ctx, "empty_text")
	provider.RecordEmergency(ctx)
	provider.RecordSentiment(ctx, "rule-based", false)
	provider.RecordKeywordScan(ctx, time.Millisecond)
	provider.RecordBatchSize(1)
	provider.SetActiveWorkers(0)

	spanCtx, span := provider.StartSpan(ctx, "noop")
	if spanCtx == nil || span == nil {
		t.Error("nil provider StartSpan must return usable context and span")
	}
	span.End()
}
