package judge

import (
	"context"
	"sync"
	"sync/atomic"

	"lingo-practice/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/tmc/langchaingo/llms"
)

// MockModel is a mock type for the llms.Model interface
type MockModel struct {
	mock.Mock
}

func (m *MockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llms.ContentResponse), args.Error(1)
}

func (m *MockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func contentResponse(text string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: text}}}
}

// MockJudge is a mock type for the domain.SemanticJudge interface
type MockJudge struct {
	mock.Mock
}

func (m *MockJudge) Judge(ctx context.Context, req domain.JudgeRequest) (*domain.JudgeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JudgeResponse), args.Error(1)
}

// gatedJudge blocks every call until release is closed and counts calls.
type gatedJudge struct {
	calls   atomic.Int32
	started sync.Once
	entered chan struct{}
	release chan struct{}
	resp    *domain.JudgeResponse
}

func newGatedJudge(resp *domain.JudgeResponse) *gatedJudge {
	return &gatedJudge{entered: make(chan struct{}), release: make(chan struct{}), resp: resp}
}

func (g *gatedJudge) Judge(ctx context.Context, _ domain.JudgeRequest) (*domain.JudgeResponse, error) {
	g.calls.Add(1)
	g.started.Do(func() { close(g.entered) })
	select {
	case <-g.release:
		return g.resp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
