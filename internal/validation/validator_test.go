package validation

import (
	"strings"
	"testing"

	"lingo-practice/internal/domain"

	"github.com/stretchr/testify/assert"
)

func fields(errs domain.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field+":"+string(e.Code))
	}
	return out
}

func TestValidateEvaluateRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name         string
		exerciseType string
		userAnswer   string
		expected     string
		want         []string
	}{
		{"valid typing", "translate-typing", "I am here", "I'm here", []string{}},
		{"valid listening", "listening", "where is it", "Where is it?", []string{}},
		{"empty answer allowed", "translate-typing", "", "I'm here", []string{}},
		{"missing type", "", "a", "b", []string{"exercise_type:MISSING_FIELD"}},
		{"unknown type", "speaking", "a", "b", []string{"exercise_type:INVALID_FORMAT"}},
		{"word bubbles on wrong endpoint", "word-bubbles", "a", "b", []string{"exercise_type:INVALID_FORMAT"}},
		{"missing expected", "listening", "a", "  ", []string{"expected_answer:MISSING_FIELD"}},
		{"answer too long", "listening", strings.Repeat("a", MaxAnswerLength+1), "b", []string{"user_answer:OUT_OF_RANGE"}},
		{"answer at limit counts runes", "listening", strings.Repeat("ř", MaxAnswerLength), "b", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields(v.ValidateEvaluateRequest(tt.exerciseType, tt.userAnswer, tt.expected)))
		})
	}
}

func TestValidateWordBubblesRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		selected []string
		expected string
		want     []string
	}{
		{"valid", []string{"I", "go"}, "I go", []string{}},
		{"empty selection", nil, "I go", []string{"selected:MISSING_FIELD"}},
		{"blank token", []string{"I", " "}, "I go", []string{"selected:INVALID_FORMAT"}},
		{"too many tokens", make([]string, MaxSelectedTokens+1), "I go", []string{"selected:OUT_OF_RANGE"}},
		{"missing expected and selection", nil, "", []string{"selected:MISSING_FIELD", "expected_answer:MISSING_FIELD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields(v.ValidateWordBubblesRequest(tt.selected, tt.expected)))
		})
	}
}
