package judge

import (
	"fmt"
	"net/http"
	"time"

	"lingo-practice/internal/config"
	"lingo-practice/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewModel creates the langchaingo model for the configured provider.
func NewModel(cfg config.JudgeConfig) (llms.Model, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case config.JudgeProviderOllama:
		llm, err := ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return llm, nil
	case config.JudgeProviderOpenAI:
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
			openai.WithHTTPClient(httpClient),
		}
		if cfg.ServerURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.ServerURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("provider %q is not backed by a language model", cfg.Provider)
	}
}

// New builds the semantic judge described by cfg, wrapped with retries and,
// when store is non-nil, a verdict cache. It returns nil for the "none"
// provider; the evaluator then rejects anything it would have deferred.
func New(cfg config.JudgeConfig, store domain.Cache) (domain.SemanticJudge, error) {
	var j domain.SemanticJudge

	switch cfg.Provider {
	case config.JudgeProviderNone:
		return nil, nil
	case config.JudgeProviderHTTP:
		j = NewHTTPJudge(cfg.Endpoint, &http.Client{Timeout: cfg.Timeout})
	default:
		model, err := NewModel(cfg)
		if err != nil {
			return nil, err
		}
		j = NewLLMJudge(model, cfg.Timeout)
	}

	rc := DefaultRetryConfig()
	rc.MaxAttempts = max(cfg.MaxAttempts, 1)
	if cfg.RetryWait > 0 {
		rc.InitialWait = cfg.RetryWait
		rc.MaxWait = max(rc.MaxWait, 4*cfg.RetryWait)
	}
	if rc.MaxAttempts > 1 {
		j = WithRetry(j, rc)
	}

	if store != nil {
		j = WithCache(j, store, cfg.CacheTTL, WithSharedCallTimeout(callBudget(cfg.Timeout, rc)))
	}
	return j, nil
}

// callBudget is the longest one judge request may take with every retry and
// the longest backoff between them. Zero leaves the cache default in place.
func callBudget(timeout time.Duration, rc RetryConfig) time.Duration {
	if timeout <= 0 {
		return 0
	}
	attempts := time.Duration(rc.MaxAttempts)
	return attempts*timeout + (attempts-1)*rc.MaxWait
}
