package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aacvocab/termrank/pkg/config"
	"github.com/aacvocab/termrank/pkg/logger"
	"github.com/aacvocab/termrank/pkg/metrics"
	pkgredis "github.com/aacvocab/termrank/pkg/redis"
)

const cacheKeyPrefix = "emb:"

// Store is the cache backend contract, satisfied by pkg/redis.Client.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	FlushByPattern(ctx context.Context, pattern string) (int64, error)
}

// CachedService is a read-through Redis decorator over a Service, keyed by
// sha256(model|text). Redis is never a source of truth: a get failure is a
// miss, a set failure is only logged, and misses fall through to the
// wrapped service in one upstream call.
type CachedService struct {
	inner   Service
	client  Store
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewCachedService wraps inner with a Redis read-through cache. m may be
// nil.
func NewCachedService(inner Service, client Store, cfg config.RedisConfig, m *metrics.Metrics) *CachedService {
	return &CachedService{
		inner:   inner,
		client:  client,
		ttl:     cfg.CacheTTL,
		metrics: m,
		logger:  logger.WithComponent("embedding-cache"),
	}
}

// Embed serves cached vectors where possible and fetches the rest from the
// wrapped service, preserving input order.
func (c *CachedService) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	missIdx := make([]int, 0, len(texts))
	for i, text := range texts {
		if vec, ok := c.lookup(ctx, text); ok {
			out[i] = vec
		} else {
			missIdx = append(missIdx, i)
		}
	}
	hits := len(texts) - len(missIdx)
	c.hits.Add(int64(hits))
	c.misses.Add(int64(len(missIdx)))
	if c.metrics != nil {
		c.metrics.CacheHitsTotal.Add(float64(hits))
		c.metrics.CacheMissesTotal.Add(float64(len(missIdx)))
	}
	if len(missIdx) == 0 {
		return out, nil
	}

	missTexts := make([]string, len(missIdx))
	for j, i := range missIdx {
		missTexts[j] = texts[i]
	}
	vecs, err := c.inner.Embed(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(missTexts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d texts", len(vecs), len(missTexts))
	}
	for j, i := range missIdx {
		out[i] = vecs[j]
		c.store(ctx, texts[i], vecs[j])
	}
	return out, nil
}

// Dimension returns the wrapped service's vector length.
func (c *CachedService) Dimension() int {
	return c.inner.Dimension()
}

// Model returns the wrapped service's model identifier.
func (c *CachedService) Model() string {
	return c.inner.Model()
}

// Invalidate removes every cached embedding.
func (c *CachedService) Invalidate(ctx context.Context) error {
	deleted, err := c.client.FlushByPattern(ctx, cacheKeyPrefix+"*")
	if err != nil {
		return fmt.Errorf("invalidating embedding cache: %w", err)
	}
	c.logger.Info("embedding cache invalidated", "keys_deleted", deleted)
	return nil
}

// Stats returns the hit and miss counts since startup.
func (c *CachedService) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *CachedService) lookup(ctx context.Context, text string) ([]float32, bool) {
	key := c.key(text)
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	var vec []float32
	if err := json.Unmarshal([]byte(data), &vec); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		return nil, false
	}
	if len(vec) != c.inner.Dimension() {
		return nil, false
	}
	return vec, true
}

func (c *CachedService) store(ctx context.Context, text string, vec []float32) {
	key := c.key(text)
	data, err := json.Marshal(vec)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

func (c *CachedService) key(text string) string {
	sum := sha256.Sum256([]byte(c.inner.Model() + "\x00" + text))
	return fmt.Sprintf("%s%x", cacheKeyPrefix, sum[:16])
}
