// Package ranker implements the term ranking and selection engine: it
// normalizes a candidate pool, scores each term against the context
// embedding, classifies terms into linguistic categories, and selects a
// bounded, diverse, quota-balanced subset with Maximal Marginal Relevance.
package ranker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/aacvocab/termrank/pkg/errors"
	"github.com/aacvocab/termrank/pkg/logger"
	"github.com/aacvocab/termrank/pkg/metrics"
)

// Embedder is the embedding collaborator contract: the i-th output vector
// corresponds to the i-th input text, and all vectors share one fixed
// dimensionality.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Engine ranks candidate terms against a context. It holds only read-only
// collaborators and configuration, so one Engine serves concurrent
// requests without synchronization.
type Engine struct {
	embedder Embedder
	tagger   Tagger
	decor    DecorationLookup
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New creates a ranking engine. tagger, decor, and m may be nil: a nil
// tagger classifies everything as "other", a nil decor leaves decorations
// empty, a nil m disables instrumentation.
func New(embedder Embedder, tagger Tagger, decor DecorationLookup, m *metrics.Metrics) *Engine {
	return &Engine{
		embedder: embedder,
		tagger:   tagger,
		decor:    decor,
		metrics:  m,
		logger:   logger.WithComponent("rank-engine"),
	}
}

// Rank produces the ordered, category-balanced selection for one request.
// It is deterministic given deterministic collaborators. A failed or
// cancelled embedding call aborts the whole request; partial rankings are
// never returned.
func (e *Engine) Rank(ctx context.Context, contextText string, candidates []string, p Params) (*Result, error) {
	start := time.Now()
	outcome := "error"
	defer func() {
		if e.metrics != nil {
			e.metrics.RankRequestsTotal.WithLabelValues(outcome).Inc()
			e.metrics.RankLatency.Observe(time.Since(start).Seconds())
		}
	}()

	contextText = strings.TrimSpace(contextText)
	if contextText == "" {
		return nil, fmt.Errorf("%w: context text required", apperrors.ErrInvalidInput)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	pool, err := buildPool(candidates)
	if err != nil {
		outcome = "empty_pool"
		return nil, err
	}

	texts := make([]string, 0, len(pool)+1)
	texts = append(texts, contextText)
	for i := range pool {
		texts = append(texts, pool[i].key)
	}
	vectors, err := e.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmbeddingUnavailable) {
			outcome = "embedding_error"
		}
		return nil, fmt.Errorf("embedding request: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding collaborator returned %d vectors for %d texts", len(vectors), len(texts))
	}
	ctxVec := vectors[0]
	for i := range pool {
		pool[i].embedding = vectors[i+1]
	}

	if err := scorePool(pool, ctxVec); err != nil {
		return nil, err
	}
	classifyPool(pool, e.tagger)

	warnings := selectTerms(pool, p)
	terms := assemble(pool, e.decor)

	if e.metrics != nil {
		e.metrics.CandidatePoolSize.Observe(float64(len(pool)))
		e.metrics.TermsSelectedCount.Observe(float64(len(terms)))
		for _, w := range warnings {
			e.metrics.QuotaShortfallsTotal.WithLabelValues(w.Category.String()).Inc()
		}
	}
	logger.FromContext(ctx).Info("ranking complete",
		"pool_size", len(pool),
		"selected", len(terms),
		"budget", p.Budget,
		"quota_warnings", len(warnings),
		"duration", time.Since(start),
	)

	outcome = "ok"
	return &Result{
		Context:  contextText,
		Terms:    terms,
		Warnings: warnings,
	}, nil
}
