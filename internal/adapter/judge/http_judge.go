package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"lingo-practice/internal/domain"
	"lingo-practice/internal/logger"

	"go.uber.org/zap"
)

const maxJudgeBody = 64 << 10

// StatusError is returned when the judge function answers with a non-2xx
// status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("judge returned status %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying may help.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// HTTPJudge posts the judge request to a serverless function.
type HTTPJudge struct {
	endpoint string
	client   *http.Client
}

// NewHTTPJudge creates a judge that calls endpoint. The client owns the
// request timeout; nil uses http.DefaultClient.
func NewHTTPJudge(endpoint string, client *http.Client) *HTTPJudge {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPJudge{endpoint: endpoint, client: client}
}

// Judge implements domain.SemanticJudge
func (j *HTTPJudge) Judge(ctx context.Context, req domain.JudgeRequest) (*domain.JudgeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, domain.NewInternalError("failed to encode judge request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, j.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewJudgeServiceError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := j.client.Do(httpReq)
	if err != nil {
		logger.Get().Error("Judge function call failed", zap.String("endpoint", j.endpoint), zap.Error(err))
		return nil, domain.NewJudgeServiceError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxJudgeBody))
	if err != nil {
		return nil, domain.NewJudgeServiceError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Get().Warn("Judge function returned an error status",
			zap.String("endpoint", j.endpoint),
			zap.Int("status", resp.StatusCode))
		return nil, domain.NewJudgeServiceError(&StatusError{StatusCode: resp.StatusCode, Body: string(respBody)})
	}

	return decodeJudgeBody(respBody)
}
