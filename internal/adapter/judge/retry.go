package judge

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"lingo-practice/internal/domain"
	"lingo-practice/internal/logger"

	"go.uber.org/zap"
)

// RetryConfig controls the backoff between judge attempts.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig keeps the total wait short; a learner is waiting.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 2,
		InitialWait: 300 * time.Millisecond,
		MaxWait:     2 * time.Second,
		Multiplier:  2,
	}
}

type retryJudge struct {
	inner  domain.SemanticJudge
	config RetryConfig
}

// WithRetry wraps a judge with retries, exponential backoff and jitter.
func WithRetry(j domain.SemanticJudge, cfg RetryConfig) domain.SemanticJudge {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryJudge{inner: j, config: cfg}
}

func (r *retryJudge) Judge(ctx context.Context, req domain.JudgeRequest) (*domain.JudgeResponse, error) {
	var lastErr error
	malformedRetried := false

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Judge(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldRetry(err, &malformedRetried) || attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt)
		logger.Get().Debug("Retrying semantic judge",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func shouldRetry(err error, malformedRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A malformed reply gets one more chance; models are not deterministic.
	var de *domain.DomainError
	if errors.As(err, &de) && de.Code == domain.CodeJudgeMalformed {
		if *malformedRetried {
			return false
		}
		*malformedRetried = true
		return true
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}

	return true
}

func (r *retryJudge) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxWait > 0 && wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
