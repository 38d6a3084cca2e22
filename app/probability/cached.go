package probability

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oddsmith/punt/internal/cache"
	"github.com/oddsmith/punt/internal/logger"
	"github.com/oddsmith/punt/models"
)

// CachedSource memoizes another source's predictions. Two offers with the
// same market and the same context bundle hit the same cache entry, which
// keeps repeated board scans from hammering a slow model service. A cache
// fault is never allowed to fail a prediction; the inner source is always
// the authority.
type CachedSource struct {
	inner Source
	cache cache.Cache[Prediction]
	ttl   time.Duration
	log   logger.Logger
}

// NewCachedSource wraps inner with a prediction cache.
func NewCachedSource(inner Source, c cache.Cache[Prediction], ttl time.Duration, log logger.Logger) *CachedSource {
	return &CachedSource{inner: inner, cache: c, ttl: ttl, log: log}
}

// Name identifies the underlying source.
func (s *CachedSource) Name() string {
	return s.inner.Name()
}

// Predict serves from cache when possible and fills the cache on a miss.
func (s *CachedSource) Predict(ctx context.Context, market string, betCtx models.BetContext) (Prediction, error) {
	key, keyErr := predictionCacheKey(s.inner.Name(), market, betCtx)
	if keyErr != nil {
		// An unhashable context cannot be cached; answer directly.
		return s.inner.Predict(ctx, market, betCtx)
	}

	pred, err := s.cache.Get(ctx, key)
	if err == nil {
		return pred, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("prediction cache read failed", logger.Fields{
			"market": market,
			"error":  err.Error(),
		})
	}

	pred, err = s.inner.Predict(ctx, market, betCtx)
	if err != nil {
		return Prediction{}, err
	}

	if err := s.cache.Set(ctx, key, pred, s.ttl); err != nil {
		s.log.Warn("prediction cache write failed", logger.Fields{
			"market": market,
			"error":  err.Error(),
		})
	}
	return pred, nil
}

// predictionCacheKey builds a deterministic key from the source name, the
// market lane, and the context bundle. Map keys marshal in sorted order, so
// equal contexts hash identically regardless of insertion order.
func predictionCacheKey(source, market string, betCtx models.BetContext) (string, error) {
	payload, err := json.Marshal(betCtx)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("prediction:%s:%s:%s", source, market, hex.EncodeToString(sum[:16])), nil
}
