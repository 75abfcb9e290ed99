package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExerciseType(t *testing.T) {
	tests := []struct {
		in      string
		want    ExerciseType
		wantErr bool
	}{
		{"translate-typing", ExerciseTranslateTyping, false},
		{"listening", ExerciseListening, false},
		{" word-bubbles ", ExerciseWordBubbles, false},
		{"speaking", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExerciseType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, NewUnknownExerciseTypeError(""))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewJudgeRequest(t *testing.T) {
	ec := ExerciseContext{Type: ExerciseListening, Prompt: "Where is it?", LessonKind: "questions"}
	req := NewJudgeRequest("where is it", "Where is it?", ec)

	assert.Equal(t, JudgeRequest{
		UserAnswer:    "where is it",
		CorrectAnswer: "Where is it?",
		ExerciseType:  ExerciseListening,
		Context:       "Where is it?",
		LessonKind:    "questions",
	}, req)
}

func TestDomainError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewJudgeServiceError(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, NewJudgeServiceError(nil))
	assert.NotErrorIs(t, err, NewJudgeMalformedError(nil))
	assert.Contains(t, err.Error(), "dial tcp: refused")

	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"code":"JUDGE_SERVICE_ERROR","message":"Failed to get a verdict from the semantic judge"}`, string(data))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		NewMissingFieldError("expected_answer"),
		NewOutOfRangeError("user_answer", 2500, 0, 2000),
	}

	assert.Equal(t, "expected_answer: field is required; user_answer: value 2500 is outside the allowed range 0-2000", errs.Error())
	assert.Equal(t, CodeOutOfRange, errs[1].Code)
}
