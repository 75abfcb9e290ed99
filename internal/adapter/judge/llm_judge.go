// Package judge contains the semantic-judge clients the evaluator defers to,
// plus retry and caching decorators around them.
package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"lingo-practice/internal/domain"
	"lingo-practice/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const judgePromptTemplate = `You grade answers in a language-learning app where Czech speakers practise English.
Decide whether the learner's answer is an acceptable English answer for the exercise.
Accept answers that are grammatical and mean the same as the expected answer, even when
word order, synonyms, contractions or British/American spelling differ. Czech does not mark
gender in many forms, so accept "he" for "she" and similar swaps. Reject answers with a wrong
tense, wrong meaning or broken grammar.

Respond with ONLY a JSON object in the following format:
{
    "isCorrect": true,
    "explanation": "one short sentence"
}

Exercise type: %s
Original prompt: %s
Lesson kind: %s
Expected answer: %s
Learner's answer: %s`

// LLMJudge asks a language model whether an answer is acceptable.
type LLMJudge struct {
	model   llms.Model
	timeout time.Duration
}

// NewLLMJudge creates a judge backed by model. A zero timeout leaves the
// deadline to the caller's context.
func NewLLMJudge(model llms.Model, timeout time.Duration) *LLMJudge {
	return &LLMJudge{model: model, timeout: timeout}
}

// Judge implements domain.SemanticJudge
func (j *LLMJudge) Judge(ctx context.Context, req domain.JudgeRequest) (*domain.JudgeResponse, error) {
	l := logger.Get()
	l.Debug("Asking LLM judge",
		zap.String("exercise_type", string(req.ExerciseType)),
		zap.String("lesson_kind", req.LessonKind))

	lessonKind := req.LessonKind
	if lessonKind == "" {
		lessonKind = "unspecified"
	}
	prompt := fmt.Sprintf(judgePromptTemplate, req.ExerciseType, req.Context, lessonKind, req.CorrectAnswer, req.UserAnswer)

	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	raw, err := llms.GenerateFromSinglePrompt(ctx, j.model, prompt, llms.WithTemperature(0.1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM judge request timed out", zap.Error(err))
			return nil, domain.NewJudgeServiceError(fmt.Errorf("LLM request timed out: %w", err))
		}
		l.Error("Failed to get response from LLM judge", zap.Error(err))
		return nil, domain.NewJudgeServiceError(err)
	}

	l.Debug("Raw LLM judge response received", zap.String("raw_response", raw))
	return parseJudgeResponse(raw)
}

// parseJudgeResponse extracts the JSON object from a model reply. Reasoning
// blocks and code fences around it are ignored.
func parseJudgeResponse(raw string) (*domain.JudgeResponse, error) {
	cleaned := strings.TrimSpace(raw)

	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd <= jsonStart {
		return nil, domain.NewJudgeMalformedError(fmt.Errorf("no JSON object found in LLM response: %q", cleaned))
	}

	return decodeJudgeBody([]byte(cleaned[jsonStart : jsonEnd+1]))
}

// decodeJudgeBody decodes a judge reply. Unknown fields are ignored but
// isCorrect must be present.
func decodeJudgeBody(body []byte) (*domain.JudgeResponse, error) {
	var payload struct {
		IsCorrect   *bool  `json:"isCorrect"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.NewJudgeMalformedError(err)
	}
	if payload.IsCorrect == nil {
		return nil, domain.NewJudgeMalformedError(errors.New("isCorrect is missing"))
	}
	return &domain.JudgeResponse{IsCorrect: *payload.IsCorrect, Explanation: payload.Explanation}, nil
}
