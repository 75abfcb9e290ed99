package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Evaluation errors
	CodeUnknownExerciseType ErrorCode = "UNKNOWN_EXERCISE_TYPE"
	CodeEmptySelection      ErrorCode = "EMPTY_SELECTION"
	CodeJudgeService        ErrorCode = "JUDGE_SERVICE_ERROR"
	CodeJudgeMalformed      ErrorCode = "JUDGE_MALFORMED_RESPONSE"
	CodeJudgeUnavailable    ErrorCode = "JUDGE_UNAVAILABLE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

var (
	// ErrEmptySelection signals a word-assembly call without selected tokens.
	// It is a caller bug, not a learner mistake.
	ErrEmptySelection = NewError(CodeEmptySelection, "word assembly requires at least one selected token", nil)

	// ErrJudgeUnavailable is reported when an answer needs the semantic judge
	// but none is configured.
	ErrJudgeUnavailable = NewError(CodeJudgeUnavailable, "semantic judge is not configured", nil)
)

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnknownExerciseTypeError(exerciseType string) *DomainError {
	return NewError(CodeUnknownExerciseType, fmt.Sprintf("Unknown exercise type: %q", exerciseType), nil)
}

func NewJudgeServiceError(err error) *DomainError {
	return NewError(CodeJudgeService, "Failed to get a verdict from the semantic judge", err)
}

func NewJudgeMalformedError(err error) *DomainError {
	return NewError(CodeJudgeMalformed, "Semantic judge returned a malformed response", err)
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field of a request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: "field is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: fmt.Sprintf("invalid value %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("value %d is outside the allowed range %d-%d", value, min, max),
	}
}
