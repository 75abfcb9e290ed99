// Package evaluator decides whether a learner's free-text answer is correct.
//
// Answers run through ordered decision lanes built on the normalize and
// similarity packages. Answers the lanes cannot classify are deferred to a
// domain.SemanticJudge. The evaluator holds no state between calls and is
// safe for concurrent use.
package evaluator

import (
	"context"
	"strings"

	"lingo-practice/internal/domain"
	"lingo-practice/internal/logger"

	"go.uber.org/zap"
)

// Result is what one evaluation resolves to.
type Result struct {
	Verdict  domain.Verdict
	Decision Decision
	// Judged is set when the semantic judge was consulted.
	Judged bool
	// JudgeErr is set when the judge was needed but failed. The verdict is
	// then a rejection and the caller may offer a retry.
	JudgeErr error
}

// Retryable reports whether the rejection came from a judge failure rather
// than from the answer itself.
func (r Result) Retryable() bool {
	return r.JudgeErr != nil
}

// Evaluator runs the decision policy and consults the judge when needed.
type Evaluator struct {
	policy *Policy
	judge  domain.SemanticJudge
}

// New creates an Evaluator. judge may be nil, in which case deferred answers
// are rejected with domain.ErrJudgeUnavailable.
func New(policy *Policy, judge domain.SemanticJudge) *Evaluator {
	if policy == nil {
		policy = NewPolicy(DefaultThresholds())
	}
	return &Evaluator{policy: policy, judge: judge}
}

// Policy returns the evaluator's decision policy.
func (e *Evaluator) Policy() *Policy {
	return e.policy
}

// TypedTranslation evaluates a free-typed translation against its reference
// sentence.
func (e *Evaluator) TypedTranslation(ctx context.Context, typed, expected string, ec domain.ExerciseContext) Result {
	return e.resolve(ctx, typed, expected, ec, e.policy.Decide(typed, expected))
}

// Listening evaluates a dictation of the sentence that was played as audio.
// Learners never see the punctuation, which the fold lane discards.
func (e *Evaluator) Listening(ctx context.Context, typed, played string, ec domain.ExerciseContext) Result {
	return e.resolve(ctx, typed, played, ec, e.policy.Decide(typed, played))
}

// WordAssembly evaluates the word tokens a learner tapped into place.
// Distractors the learner left unselected do not affect the verdict.
// An empty selection is a caller bug and returns domain.ErrEmptySelection.
func (e *Evaluator) WordAssembly(ctx context.Context, selected, distractors []string, expected string, ec domain.ExerciseContext) (Result, error) {
	if len(selected) == 0 {
		return Result{}, domain.ErrEmptySelection
	}
	answer := strings.Join(selected, " ")

	logger.Get().Debug("Evaluating word assembly",
		zap.Int("selected", len(selected)),
		zap.Int("distractors", len(distractors)))

	if d, ok := e.policy.DecideWordOrder(selected, expected); ok {
		return e.resolve(ctx, answer, expected, ec, d), nil
	}
	return e.resolve(ctx, answer, expected, ec, e.policy.Decide(answer, expected)), nil
}

// Evaluate dispatches on the exercise type. Word-bubble answers arrive as a
// space-separated token string.
func (e *Evaluator) Evaluate(ctx context.Context, userAnswer, expected string, ec domain.ExerciseContext) (Result, error) {
	switch ec.Type {
	case domain.ExerciseTranslateTyping:
		return e.TypedTranslation(ctx, userAnswer, expected, ec), nil
	case domain.ExerciseListening:
		return e.Listening(ctx, userAnswer, expected, ec), nil
	case domain.ExerciseWordBubbles:
		return e.WordAssembly(ctx, strings.Fields(userAnswer), nil, expected, ec)
	default:
		return Result{}, domain.NewUnknownExerciseTypeError(string(ec.Type))
	}
}

// resolve turns a lane decision into a verdict, consulting the judge for
// deferred answers. It always returns a verdict.
func (e *Evaluator) resolve(ctx context.Context, userAnswer, expected string, ec domain.ExerciseContext, d Decision) Result {
	l := logger.Get()
	res := Result{
		Decision: d,
		Verdict:  domain.Verdict{UserAnswer: userAnswer, IsCorrect: d.Outcome == Accepted},
	}
	l.Debug("Decision lanes finished",
		zap.String("exercise_type", string(ec.Type)),
		zap.String("lane", d.Lane.String()),
		zap.String("outcome", d.Outcome.String()),
		zap.Float64("similarity", d.Similarity))

	if d.Outcome != DeferToJudge {
		return res
	}
	if e.judge == nil {
		res.JudgeErr = domain.ErrJudgeUnavailable
		l.Warn("Answer needs the semantic judge but none is configured", zap.String("lane", d.Lane.String()))
		return res
	}

	l.Info("Deferring answer to semantic judge",
		zap.String("exercise_type", string(ec.Type)),
		zap.String("lane", d.Lane.String()),
		zap.Float64("similarity", d.Similarity))

	res.Judged = true
	resp, err := e.judge.Judge(ctx, domain.NewJudgeRequest(userAnswer, expected, ec))
	if err == nil && resp == nil {
		err = domain.NewJudgeMalformedError(nil)
	}
	if err == nil && ctx.Err() != nil {
		// the caller has moved on; a late verdict must not count
		err = ctx.Err()
	}
	if err != nil {
		res.JudgeErr = err
		l.Warn("Semantic judge failed, rejecting answer", zap.Error(err))
		return res
	}
	res.Verdict.IsCorrect = resp.IsCorrect
	return res
}
