// Package telemetry provides OpenTelemetry instrumentation for the triage
// service. It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "triage"

// Metrics holds all triage Prometheus metrics
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysesFailed   *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	BatchSize        prometheus.Histogram

	// Emergency metrics
	EmergenciesDetected prometheus.Counter

	// Sentiment path metrics
	SentimentByMethod *prometheus.CounterVec
	ModelFailovers    prometheus.Counter

	// Keyword engine metrics
	KeywordScanDuration prometheus.Histogram

	// Worker metrics
	ActiveWorkers prometheus.Gauge
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAnalysisMetrics(m)
	initSentimentMetrics(m)
	initEngineMetrics(m)
	return m
}

func initAnalysisMetrics(m *Metrics) {
	m.AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_analyses_total",
		Help: "Total texts analyzed, by urgency tier",
	}, []string{"urgency"})

	m.AnalysesFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_analyses_failed_total",
		Help: "Total analyses rejected or failed, by reason",
	}, []string{"reason"})

	m.AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "triage_analysis_duration_seconds",
		Help:    "Time to analyze a single text",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	}, []string{"method"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "triage_batch_size",
		Help:    "Number of texts per batch",
		Buckets: []float64{1, 2, 5, 10, 20, 50},
	})

	m.EmergenciesDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triage_emergencies_detected_total",
		Help: "Total analyses where the emergency override fired",
	})
}

func initSentimentMetrics(m *Metrics) {
	m.SentimentByMethod = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_sentiment_total",
		Help: "Sentiment classifications by path (model-based, rule-based)",
	}, []string{"method"})

	m.ModelFailovers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triage_model_failovers_total",
		Help: "Times the model path failed mid-request and the rule path answered",
	})
}

func initEngineMetrics(m *Metrics) {
	m.KeywordScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "triage_keyword_scan_duration_seconds",
		Help:    "Time spent in keyword matching (category plus emergency scan)",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	m.ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "triage_active_workers",
		Help: "Currently active batch worker goroutines",
	})
}

// RecordAnalysis records metrics for a single completed analysis.
func (p *Provider) RecordAnalysis(ctx context.Context, urgency, method string, duration time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.AnalysesTotal.WithLabelValues(urgency).Inc()
	p.Metrics.AnalysisDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordAnalysisFailure records a rejected or failed analysis.
func (p *Provider) RecordAnalysisFailure(ctx context.Context, reason string) {
	if p == nil {
		return
	}
	p.Metrics.AnalysesFailed.WithLabelValues(reason).Inc()
}

// RecordEmergency records an emergency override.
func (p *Provider) RecordEmergency(ctx context.Context) {
	if p == nil {
		return
	}
	p.Metrics.EmergenciesDetected.Inc()
}

// RecordSentiment records which sentiment path answered. failover is true
// when the model path was loaded but the rule path answered this request.
func (p *Provider) RecordSentiment(ctx context.Context, method string, failover bool) {
	if p == nil {
		return
	}
	p.Metrics.SentimentByMethod.WithLabelValues(method).Inc()
	if failover {
		p.Metrics.ModelFailovers.Inc()
	}
}

// RecordKeywordScan records the keyword matching duration.
func (p *Provider) RecordKeywordScan(ctx context.Context, duration time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.KeywordScanDuration.Observe(duration.Seconds())
}

// RecordBatchSize records the size of a submitted batch.
func (p *Provider) RecordBatchSize(size int) {
	if p == nil {
		return
	}
	p.Metrics.BatchSize.Observe(float64(size))
}

// SetActiveWorkers sets the current active worker count.
func (p *Provider) SetActiveWorkers(count int) {
	if p == nil {
		return
	}
	p.Metrics.ActiveWorkers.Set(float64(count))
}

// StartSpan starts a new trace span. A nil provider returns the context
// unchanged with a no-op span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if p == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
