package judge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lingo-practice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPJudge_Judge(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		want       *domain.JudgeResponse
		wantCode   domain.ErrorCode
		wantStatus int
	}{
		{
			name:   "accepted",
			status: http.StatusOK,
			body:   `{"isCorrect": true, "explanation": "fine"}`,
			want:   &domain.JudgeResponse{IsCorrect: true, Explanation: "fine"},
		},
		{
			name:   "rejected with extra fields",
			status: http.StatusOK,
			body:   `{"isCorrect": false, "model": "gpt"}`,
			want:   &domain.JudgeResponse{IsCorrect: false},
		},
		{
			name:     "malformed body",
			status:   http.StatusOK,
			body:     `<html>oops</html>`,
			wantCode: domain.CodeJudgeMalformed,
		},
		{
			name:       "server error",
			status:     http.StatusBadGateway,
			body:       `upstream down`,
			wantCode:   domain.CodeJudgeService,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.JudgeRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			j := NewHTTPJudge(srv.URL, srv.Client())
			resp, err := j.Judge(context.Background(), sampleRequest)

			assert.Equal(t, sampleRequest, got)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, domain.NewError(tt.wantCode, "", nil))
				if tt.wantStatus != 0 {
					var se *StatusError
					require.True(t, errors.As(err, &se))
					assert.Equal(t, tt.wantStatus, se.StatusCode)
					assert.True(t, se.Temporary())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestHTTPJudge_RequestBodyUsesCamelCase(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"isCorrect": true}`))
	}))
	defer srv.Close()

	_, err := NewHTTPJudge(srv.URL, nil).Judge(context.Background(), sampleRequest)
	require.NoError(t, err)

	assert.Equal(t, "I am visiting my grandma", raw["userAnswer"])
	assert.Equal(t, "I'm visiting my grandmother.", raw["correctAnswer"])
	assert.Equal(t, "translate-typing", raw["exerciseType"])
	assert.Equal(t, "Navštěvuji babičku.", raw["context"])
}

func TestHTTPJudge_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := NewHTTPJudge(srv.URL, srv.Client()).Judge(ctx, sampleRequest)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStatusError_Temporary(t *testing.T) {
	assert.True(t, (&StatusError{StatusCode: http.StatusTooManyRequests}).Temporary())
	assert.True(t, (&StatusError{StatusCode: http.StatusServiceUnavailable}).Temporary())
	assert.False(t, (&StatusError{StatusCode: http.StatusBadRequest}).Temporary())
	assert.False(t, (&StatusError{StatusCode: http.StatusUnauthorized}).Temporary())
}
