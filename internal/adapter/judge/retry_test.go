package judge

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"lingo-practice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{MaxAttempts: attempts, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

func TestWithRetry(t *testing.T) {
	ok := &domain.JudgeResponse{IsCorrect: true}
	transient := domain.NewJudgeServiceError(errors.New("connection reset"))
	malformed := domain.NewJudgeMalformedError(errors.New("no JSON"))
	badRequest := domain.NewJudgeServiceError(&StatusError{StatusCode: http.StatusBadRequest})
	overloaded := domain.NewJudgeServiceError(&StatusError{StatusCode: http.StatusServiceUnavailable})

	tests := []struct {
		name      string
		attempts  int
		errs      []error
		wantCalls int
		wantErr   error
	}{
		{name: "first try succeeds", attempts: 3, errs: nil, wantCalls: 1},
		{name: "transient then success", attempts: 3, errs: []error{transient}, wantCalls: 2},
		{name: "gives up after max attempts", attempts: 3, errs: []error{transient, transient, transient}, wantCalls: 3, wantErr: transient},
		{name: "malformed retried once", attempts: 4, errs: []error{malformed, malformed}, wantCalls: 2, wantErr: malformed},
		{name: "client error not retried", attempts: 3, errs: []error{badRequest}, wantCalls: 1, wantErr: badRequest},
		{name: "overloaded retried", attempts: 3, errs: []error{overloaded}, wantCalls: 2},
		{name: "deadline not retried", attempts: 3, errs: []error{context.DeadlineExceeded}, wantCalls: 1, wantErr: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := new(MockJudge)
			for _, err := range tt.errs {
				inner.On("Judge", mock.Anything, sampleRequest).Return(nil, err).Once()
			}
			if tt.wantErr == nil {
				inner.On("Judge", mock.Anything, sampleRequest).Return(ok, nil).Once()
			}

			resp, err := WithRetry(inner, fastRetry(tt.attempts)).Judge(context.Background(), sampleRequest)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, ok, resp)
			}
			inner.AssertNumberOfCalls(t, "Judge", tt.wantCalls)
		})
	}
}

func TestWithRetry_StopsWhenContextEnds(t *testing.T) {
	inner := new(MockJudge)
	inner.On("Judge", mock.Anything, sampleRequest).Return(nil, domain.NewJudgeServiceError(errors.New("timeout"))).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := RetryConfig{MaxAttempts: 3, InitialWait: time.Second, MaxWait: time.Second, Multiplier: 1}
	resp, err := WithRetry(inner, cfg).Judge(ctx, sampleRequest)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.Canceled)
	inner.AssertNumberOfCalls(t, "Judge", 1)
}

func TestRetryBackoff(t *testing.T) {
	r := &retryJudge{config: RetryConfig{MaxAttempts: 5, InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}}

	for attempt, base := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond} {
		wait := r.backoff(attempt)
		assert.GreaterOrEqual(t, wait, base*8/10, "attempt %d", attempt)
		assert.LessOrEqual(t, wait, base*12/10, "attempt %d", attempt)
	}
}
