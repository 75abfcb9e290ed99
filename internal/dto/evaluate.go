package dto

// EvaluateRequest is the body of POST /api/evaluate.
// @Description Request body for checking a typed or dictated answer
type EvaluateRequest struct {
	ExerciseType   string `json:"exercise_type"`
	UserAnswer     string `json:"user_answer"`
	ExpectedAnswer string `json:"expected_answer"`
	Context        string `json:"context"`
	LessonKind     string `json:"lesson_kind,omitempty"`
}

// WordBubblesRequest is the body of POST /api/evaluate/word-bubbles.
type WordBubblesRequest struct {
	Selected       []string `json:"selected"`
	Distractors    []string `json:"distractors,omitempty"`
	ExpectedAnswer string   `json:"expected_answer"`
	Context        string   `json:"context"`
	LessonKind     string   `json:"lesson_kind,omitempty"`
}

// EvaluateResponse is returned for every evaluation, including ones the
// judge could not decide.
type EvaluateResponse struct {
	EvaluationID       string  `json:"evaluation_id"`
	IsCorrect          bool    `json:"is_correct"`
	UserAnswer         string  `json:"user_answer"`
	Outcome            string  `json:"outcome"`
	Lane               string  `json:"lane"`
	Similarity         float64 `json:"similarity"`
	NormalizedUser     string  `json:"normalized_user"`
	NormalizedExpected string  `json:"normalized_expected"`
	Judged             bool    `json:"judged"`
	// Retryable is set when the answer was rejected because the judge
	// failed; the client may offer the learner another try.
	Retryable bool   `json:"retryable"`
	Warning   string `json:"warning,omitempty"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
