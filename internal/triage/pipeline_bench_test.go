//nolint:testpackage // Testing internal pipeline requires same package access
package triage

import (
	"context"
	"testing"

	"github.com/northhealth/triage/internal/logging"
	"github.com/northhealth/triage/internal/taxonomy"
)

var benchTexts = []string{
	"I have a terrible headache and feel dizzy since this morning",
	"feeling anxious and depressed lately, can't sleep and everything is awful",
	"my diabetes and blood pressure medication needs a review",
	"trying to improve my diet and exercise routine after the holidays",
	"I have chest pain and can't breathe properly",
}

// BenchmarkNormalizeText benchmarks text normalization including accent folding
func BenchmarkNormalizeText(b *testing.B) {
	text := "  J'ai une migraine sévère   et je me sens très  fatigué  "

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = NormalizeText(text)
	}
}

// BenchmarkCategoryDetection benchmarks keyword category scoring
func BenchmarkCategoryDetection(b *testing.B) {
	tax := taxonomy.Default()
	detector := NewCategoryDetector(tax, 0, logging.NewNop())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, text := range benchTexts {
			_ = detector.Detect(NormalizeText(text))
		}
	}
}

// BenchmarkEmergencyDetection benchmarks the Aho-Corasick emergency scan
func BenchmarkEmergencyDetection(b *testing.B) {
	tax := taxonomy.Default()
	detector := NewEmergencyDetector(tax.Emergency, logging.NewNop())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, text := range benchTexts {
			_ = detector.Detect(NormalizeText(text))
		}
	}
}

// BenchmarkRuleSentiment benchmarks the lexicon sentiment path
func BenchmarkRuleSentiment(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, text := range benchTexts {
			_ = ruleSentiment(NormalizeText(text))
		}
	}
}

// BenchmarkFullAnalysis benchmarks the complete analysis pipeline
func BenchmarkFullAnalysis(b *testing.B) {
	tax := taxonomy.Default()
	nop := logging.NewNop()

	pipeline := NewPipeline(
		NewEmergencyDetector(tax.Emergency, nop),
		NewCategoryDetector(tax, 0, nop),
		NewSentimentClassifier(context.Background(), nil, 0, testProbeTimeout, nop),
		NewUrgencyClassifier(0, 0),
		NewAdviceSelector(tax, 0, nop),
		nil,
		nop,
	)

	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, text := range benchTexts {
			_, _ = pipeline.Analyze(ctx, text)
		}
	}
}
