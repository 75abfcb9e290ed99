package validation

import (
	"strings"
	"unicode/utf8"

	"lingo-practice/internal/domain"
)

const (
	MaxAnswerLength   = 2000
	MaxSelectedTokens = 64
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateEvaluateRequest validates a typed or dictated answer. An empty
// user answer is allowed; it is simply wrong.
func (v *Validator) ValidateEvaluateRequest(exerciseType, userAnswer, expectedAnswer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(exerciseType) == "" {
		errors = append(errors, domain.NewMissingFieldError("exercise_type"))
	} else if t, err := domain.ParseExerciseType(exerciseType); err != nil || t == domain.ExerciseWordBubbles {
		errors = append(errors, domain.NewInvalidFormatError("exercise_type", exerciseType))
	}

	errors = append(errors, v.validateExpected(expectedAnswer)...)

	if n := utf8.RuneCountInString(userAnswer); n > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("user_answer", n, 0, MaxAnswerLength))
	}

	return errors
}

// ValidateWordBubblesRequest validates a word-assembly submission.
func (v *Validator) ValidateWordBubblesRequest(selected []string, expectedAnswer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	switch {
	case len(selected) == 0:
		errors = append(errors, domain.NewMissingFieldError("selected"))
	case len(selected) > MaxSelectedTokens:
		errors = append(errors, domain.NewOutOfRangeError("selected", len(selected), 1, MaxSelectedTokens))
	default:
		for _, token := range selected {
			if strings.TrimSpace(token) == "" {
				errors = append(errors, domain.NewInvalidFormatError("selected", token))
				break
			}
		}
	}

	errors = append(errors, v.validateExpected(expectedAnswer)...)
	return errors
}

func (v *Validator) validateExpected(expectedAnswer string) domain.ValidationErrors {
	if strings.TrimSpace(expectedAnswer) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("expected_answer")}
	}
	if n := utf8.RuneCountInString(expectedAnswer); n > MaxAnswerLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("expected_answer", n, 1, MaxAnswerLength)}
	}
	return nil
}
