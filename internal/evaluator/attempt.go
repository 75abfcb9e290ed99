package evaluator

import (
	"context"
	"errors"
	"sync"
)

// AttemptState is the lifecycle of one asynchronous evaluation.
type AttemptState int

const (
	AttemptIdle AttemptState = iota
	AttemptPending
	AttemptResolved
	AttemptFailed
)

func (s AttemptState) String() string {
	switch s {
	case AttemptPending:
		return "pending"
	case AttemptResolved:
		return "resolved"
	case AttemptFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrAttemptStarted is returned when Start is called twice.
var ErrAttemptStarted = errors.New("attempt already started")

// Attempt tracks one evaluation through Idle -> Pending -> Resolved | Failed.
// Once an attempt is cancelled its eventual result is dropped, so a stale
// verdict is never delivered.
type Attempt struct {
	mu     sync.Mutex
	state  AttemptState
	result Result
	err    error
	done   chan struct{}
	cancel context.CancelFunc
}

// NewAttempt returns an idle attempt.
func NewAttempt() *Attempt {
	return &Attempt{done: make(chan struct{})}
}

// Start runs fn in its own goroutine. The context passed to fn is cancelled
// by Cancel.
func (a *Attempt) Start(parent context.Context, fn func(context.Context) (Result, error)) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != AttemptIdle {
		return ErrAttemptStarted
	}
	ctx, cancel := context.WithCancel(parent)
	a.state = AttemptPending
	a.cancel = cancel

	go func() {
		defer cancel()
		res, err := fn(ctx)
		a.finish(res, err)
	}()
	return nil
}

func (a *Attempt) finish(res Result, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != AttemptPending {
		return
	}
	a.result, a.err = res, err
	if err != nil {
		a.state = AttemptFailed
	} else {
		a.state = AttemptResolved
	}
	close(a.done)
}

// Cancel abandons a pending attempt. It is a no-op otherwise.
func (a *Attempt) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != AttemptPending {
		return
	}
	a.state = AttemptFailed
	a.err = context.Canceled
	a.cancel()
	close(a.done)
}

// Done is closed once the attempt has resolved or failed.
func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

// Wait blocks until the attempt finishes or ctx ends. Once ctx has ended the
// attempt is cancelled and ctx's error is returned, even if a result raced in.
func (a *Attempt) Wait(ctx context.Context) (Result, error) {
	select {
	case <-a.done:
	case <-ctx.Done():
	}
	if err := ctx.Err(); err != nil {
		a.Cancel()
		return Result{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result, a.err
}

// State returns the current state.
func (a *Attempt) State() AttemptState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}
