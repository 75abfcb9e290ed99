package domain

import "context"

// JudgeRequest is sent to the semantic judge. Answers are raw, not normalized.
type JudgeRequest struct {
	UserAnswer    string       `json:"userAnswer"`
	CorrectAnswer string       `json:"correctAnswer"`
	ExerciseType  ExerciseType `json:"exerciseType"`
	Context       string       `json:"context"`
	LessonKind    string       `json:"lessonKind,omitempty"`
}

// NewJudgeRequest builds a request from the raw answers and exercise context.
func NewJudgeRequest(userAnswer, correctAnswer string, ec ExerciseContext) JudgeRequest {
	return JudgeRequest{
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		ExerciseType:  ec.Type,
		Context:       ec.Prompt,
		LessonKind:    ec.LessonKind,
	}
}

// JudgeResponse is the part of the judge's reply the evaluator relies on.
type JudgeResponse struct {
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation,omitempty"`
}

// SemanticJudge decides answers the deterministic lanes cannot classify.
// Any error means the judge failed; callers resolve that to a rejection.
type SemanticJudge interface {
	Judge(ctx context.Context, req JudgeRequest) (*JudgeResponse, error)
}
