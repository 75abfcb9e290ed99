package judge

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lingo-practice/internal/cache"
	"lingo-practice/internal/domain"
	"lingo-practice/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// VerdictTTL is used when WithCache is given a non-positive ttl.
	VerdictTTL = 24 * time.Hour
	// SharedCallTimeout bounds a collapsed judge call unless
	// WithSharedCallTimeout says otherwise.
	SharedCallTimeout = time.Minute
)

type cachedJudge struct {
	inner       domain.SemanticJudge
	store       domain.Cache
	ttl         time.Duration
	callTimeout time.Duration
	group       singleflight.Group
}

// CacheOption configures WithCache.
type CacheOption func(*cachedJudge)

// WithSharedCallTimeout bounds the judge call that concurrent callers share.
func WithSharedCallTimeout(d time.Duration) CacheOption {
	return func(c *cachedJudge) {
		if d > 0 {
			c.callTimeout = d
		}
	}
}

// WithCache memoises judge verdicts in store and collapses identical
// in-flight requests into one judge call. Cache failures are logged and
// otherwise ignored. Failed verdicts are never cached.
//
// The collapsed call does not belong to any one caller: it keeps running
// when the caller that started it goes away, up to the shared call timeout.
func WithCache(j domain.SemanticJudge, store domain.Cache, ttl time.Duration, opts ...CacheOption) domain.SemanticJudge {
	if ttl <= 0 {
		ttl = VerdictTTL
	}
	c := &cachedJudge{inner: j, store: store, ttl: ttl, callTimeout: SharedCallTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// VerdictKey is the cache key for a judge request.
func VerdictKey(req domain.JudgeRequest) string {
	id := cache.HashParts(string(req.ExerciseType), req.LessonKind, req.Context, req.CorrectAnswer, req.UserAnswer)
	return cache.GenerateCacheKey("judge", "verdict", id)
}

func (c *cachedJudge) Judge(ctx context.Context, req domain.JudgeRequest) (*domain.JudgeResponse, error) {
	key := VerdictKey(req)

	if resp, ok := c.lookup(ctx, key); ok {
		return resp, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.callTimeout)
		defer cancel()

		resp, err := c.inner.Judge(callCtx, req)
		if err != nil {
			return nil, err
		}
		if resp == nil {
			return nil, domain.NewJudgeMalformedError(nil)
		}
		c.save(callCtx, key, resp)
		return resp, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		resp := *res.Val.(*domain.JudgeResponse)
		return &resp, nil
	}
}

func (c *cachedJudge) lookup(ctx context.Context, key string) (*domain.JudgeResponse, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Judge verdict cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var resp domain.JudgeResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		logger.Get().Warn("Discarding undecodable cached verdict", zap.String("key", key), zap.Error(err))
		if delErr := c.store.Delete(ctx, key); delErr != nil {
			logger.Get().Warn("Failed to delete cached verdict", zap.String("key", key), zap.Error(delErr))
		}
		return nil, false
	}

	logger.Get().Debug("Judge verdict cache hit", zap.String("key", key))
	return &resp, true
}

func (c *cachedJudge) save(ctx context.Context, key string, resp *domain.JudgeResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		logger.Get().Warn("Failed to encode verdict for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, string(data), c.ttl); err != nil {
		logger.Get().Warn("Failed to cache judge verdict", zap.String("key", key), zap.Error(err))
	}
}
