package domain

import "strings"

// ExerciseType tags the practice exercise an answer came from.
type ExerciseType string

const (
	ExerciseTranslateTyping ExerciseType = "translate-typing"
	ExerciseListening       ExerciseType = "listening"
	ExerciseWordBubbles     ExerciseType = "word-bubbles"
)

// ParseExerciseType validates a wire value.
func ParseExerciseType(s string) (ExerciseType, error) {
	switch t := ExerciseType(strings.TrimSpace(s)); t {
	case ExerciseTranslateTyping, ExerciseListening, ExerciseWordBubbles:
		return t, nil
	default:
		return "", NewUnknownExerciseTypeError(s)
	}
}

// ExerciseContext is passed through to the semantic judge unchanged.
type ExerciseContext struct {
	Type       ExerciseType `json:"exercise_type"`
	Prompt     string       `json:"context"`
	LessonKind string       `json:"lesson_kind,omitempty"`
}

// Verdict is the final outcome of one submission. UserAnswer is echoed back
// for the caller's bookkeeping.
type Verdict struct {
	IsCorrect  bool   `json:"is_correct"`
	UserAnswer string `json:"user_answer"`
}
