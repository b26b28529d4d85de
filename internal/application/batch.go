package application

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/devbush/clipcast/internal/domain"
	"github.com/devbush/clipcast/internal/logging"
)

// ItemResult is the outcome of one batch item, in input order.
type ItemResult struct {
	URL        string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// Failure is a batch item that did not produce output.
type Failure struct {
	URL     string
	Message string
}

// BatchResult aggregates a whole run. Succeeded and Failed preserve
// the original input order.
type BatchResult struct {
	Results []ItemResult
}

// Succeeded returns the output paths of successful items, in order.
func (r *BatchResult) Succeeded() []string {
	return lo.FilterMap(r.Results, func(item ItemResult, _ int) (string, bool) {
		return item.OutputPath, item.Err == nil
	})
}

// Failed returns the (URL, message) pairs of failed items, in order.
func (r *BatchResult) Failed() []Failure {
	return lo.FilterMap(r.Results, func(item ItemResult, _ int) (Failure, bool) {
		if item.Err == nil {
			return Failure{}, false
		}
		return Failure{URL: item.URL, Message: item.Err.Error()}, true
	})
}

// BatchRunner processes clip requests strictly sequentially: one
// request is fully fetched, resolved and transcoded before the next
// begins. A failed item neither halts the batch nor rolls back prior
// successes.
type BatchRunner struct {
	clips *ClipService
}

// NewBatchRunner creates a runner over the given pipeline.
func NewBatchRunner(clips *ClipService) *BatchRunner {
	return &BatchRunner{clips: clips}
}

// Run processes every request in order. onResult, when set, is called
// after each item completes.
func (b *BatchRunner) Run(ctx context.Context, reqs []domain.ClipRequest, onResult func(ItemResult)) *BatchResult {
	result := &BatchResult{Results: make([]ItemResult, 0, len(reqs))}

	for _, req := range reqs {
		start := time.Now()
		outPath, err := b.clips.Process(ctx, req)

		item := ItemResult{
			URL:        req.URL,
			OutputPath: outPath,
			Err:        err,
			Duration:   time.Since(start),
		}
		result.Results = append(result.Results, item)

		if err != nil {
			logging.L().Warn("batch item failed",
				zap.String("url", req.URL),
				zap.Error(err))
		}
		if onResult != nil {
			onResult(item)
		}
	}

	return result
}
