// Package processor runs triage analysis over batches with a bounded worker
// pool and per-item rate limiting.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/northhealth/triage/internal/domain"
	"github.com/northhealth/triage/internal/telemetry"
	"github.com/northhealth/triage/internal/triage"
)

const defaultConcurrency = 4

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// BatchProcessor fans a batch of texts out to a worker pool. Output order
// always matches input order regardless of which worker finishes first, and a
// per-item failure never affects its siblings.
type BatchProcessor struct {
	pipeline    *triage.Pipeline
	limiter     *RateLimiter
	concurrency int
	telemetry   *telemetry.Provider
	logger      Logger
}

// NewBatchProcessor creates a new batch processor. limiter and tel may be nil.
func NewBatchProcessor(pipeline *triage.Pipeline, concurrency int, limiter *RateLimiter, tel *telemetry.Provider, logger Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &BatchProcessor{
		pipeline:    pipeline,
		limiter:     limiter,
		concurrency: concurrency,
		telemetry:   tel,
		logger:      logger,
	}
}

type job struct {
	index int
	text  string
}

// Process analyzes a batch of texts using the worker pool. The returned slice
// has exactly one ItemResult per input text, at the input's index.
func (b *BatchProcessor) Process(ctx context.Context, texts []string) []domain.ItemResult {
	if len(texts) == 0 {
		return []domain.ItemResult{}
	}

	b.logger.Info("Starting batch processing",
		"batch_size", len(texts),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()
	b.telemetry.RecordBatchSize(len(texts))

	jobs := make(chan job, len(texts))
	results := make([]domain.ItemResult, len(texts))

	var wg sync.WaitGroup
	workers := b.concurrency
	if workers > len(texts) {
		workers = len(texts)
	}
	b.telemetry.SetActiveWorkers(workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go b.worker(ctx, i, jobs, results, &wg)
	}

	for i, text := range texts {
		jobs <- job{index: i, text: text}
	}
	close(jobs)

	wg.Wait()
	b.telemetry.SetActiveWorkers(0)

	duration := time.Since(startTime)
	successCount := 0
	errorCount := 0
	for i := range results {
		if results[i].Error == nil {
			successCount++
		} else {
			errorCount++
		}
	}

	b.logger.Info("Batch processing complete",
		"total", len(texts),
		"success", successCount,
		"errors", errorCount,
		"duration_ms", duration.Milliseconds(),
	)

	return results
}

// worker drains the jobs channel, writing each outcome to its own slot in
// results. Slots are disjoint per index so no lock is needed.
func (b *BatchProcessor) worker(
	ctx context.Context,
	id int,
	jobs <-chan job,
	results []domain.ItemResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	b.logger.Debug("Worker started", "worker_id", id)

	for j := range jobs {
		select {
		case <-ctx.Done():
			b.logger.Warn("Worker stopping due to context cancellation", "worker_id", id)
			b.drainCancelled(ctx, j, jobs, results)
			return
		default:
		}

		results[j.index] = b.processItem(ctx, j)
	}

	b.logger.Debug("Worker finished", "worker_id", id)
}

// drainCancelled marks the current and all remaining jobs as failed so every
// slot in the result slice is populated even when the context is cancelled.
func (b *BatchProcessor) drainCancelled(ctx context.Context, current job, jobs <-chan job, results []domain.ItemResult) {
	results[current.index] = domain.ItemResult{
		Index: current.index,
		Error: domain.NewItemError(current.index, current.text, ctx.Err()),
	}
	for j := range jobs {
		results[j.index] = domain.ItemResult{
			Index: j.index,
			Error: domain.NewItemError(j.index, j.text, ctx.Err()),
		}
	}
}

// processItem analyzes a single text, applying the rate limit first.
func (b *BatchProcessor) processItem(ctx context.Context, j job) domain.ItemResult {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return domain.ItemResult{
				Index: j.index,
				Error: domain.NewItemError(j.index, j.text, err),
			}
		}
	}

	result, err := b.pipeline.Analyze(ctx, j.text)
	if err != nil {
		b.logger.Debug("Item analysis rejected",
			"index", j.index,
			"error", err,
		)
		return domain.ItemResult{
			Index: j.index,
			Error: domain.NewItemError(j.index, j.text, err),
		}
	}

	return domain.ItemResult{Index: j.index, Result: result}
}

// Concurrency returns the configured worker count.
func (b *BatchProcessor) Concurrency() int {
	return b.concurrency
}
