package embedding

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aacvocab/termrank/pkg/config"
	apperrors "github.com/aacvocab/termrank/pkg/errors"
	"github.com/aacvocab/termrank/pkg/logger"
	"github.com/aacvocab/termrank/pkg/metrics"
	"github.com/aacvocab/termrank/pkg/resilience"
)

// Adapter satisfies the ranking engine's Embedder contract on top of a
// Service: it chunks inputs into bounded batches, dispatches batches
// concurrently up to maxInFlight, retries transient failures with
// exponential backoff, and reassembles vectors in input order.
//
// Any batch that exhausts its retries fails the whole request with
// ErrEmbeddingUnavailable. Scores computed from a partially embedded pool
// would be incomparable, so there is no partial-result path.
type Adapter struct {
	svc         Service
	batchSize   int
	maxInFlight int
	retry       resilience.RetryConfig
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewAdapter creates an Adapter with the configured batching and retry
// limits. m may be nil.
func NewAdapter(svc Service, cfg config.EmbeddingConfig, m *metrics.Metrics) *Adapter {
	retry := resilience.RetryConfig{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryInitialDelay,
		MaxDelay:     cfg.RetryMaxDelay,
	}
	if m != nil {
		retry.OnRetry = m.EmbeddingRetriesTotal.Inc
	}
	return &Adapter{
		svc:         svc,
		batchSize:   cfg.BatchSize,
		maxInFlight: cfg.MaxInFlight,
		retry:       retry,
		metrics:     m,
		logger:      logger.WithComponent("embedding-adapter"),
	}
}

// EmbedBatch embeds all texts, preserving input order.
func (a *Adapter) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	out := make([][]float32, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxInFlight)
	for start := 0; start < len(texts); start += a.batchSize {
		start := start
		end := min(start+a.batchSize, len(texts))
		g.Go(func() error {
			var vecs [][]float32
			err := resilience.Retry(gctx, "embed-batch", a.retry, func() error {
				v, embedErr := a.svc.Embed(gctx, texts[start:end])
				if embedErr != nil {
					return embedErr
				}
				vecs = v
				return nil
			})
			if a.metrics != nil {
				status := "ok"
				if err != nil {
					status = "error"
				}
				a.metrics.EmbeddingBatchesTotal.WithLabelValues(status).Inc()
			}
			if err != nil {
				return fmt.Errorf("batch [%d,%d): %w", start, end, err)
			}
			if len(vecs) != end-start {
				return fmt.Errorf("batch [%d,%d): got %d vectors", start, end, len(vecs))
			}
			copy(out[start:end], vecs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.logger.Error("embedding request failed", "texts", len(texts), "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrEmbeddingUnavailable, err)
	}
	a.logger.Debug("embedded texts",
		"count", len(texts),
		"batches", (len(texts)+a.batchSize-1)/a.batchSize,
		"model", a.svc.Model(),
	)
	return out, nil
}

// Dimension returns the vector length of the underlying service.
func (a *Adapter) Dimension() int {
	return a.svc.Dimension()
}
