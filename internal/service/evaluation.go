package service

import (
	"context"
	"errors"

	"lingo-practice/internal/domain"
	"lingo-practice/internal/dto"
	"lingo-practice/internal/evaluator"
	"lingo-practice/internal/logger"
	"lingo-practice/internal/util"

	"go.uber.org/zap"
)

const (
	WarningJudgeFailed      = "We couldn't verify this answer, so it was marked incorrect. Please try again."
	WarningJudgeUnavailable = "This answer needs a closer look, but answer review is not available right now."
)

// EvaluationService defines the interface for answer evaluation
type EvaluationService interface {
	CheckAnswer(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluateResponse, error)
	CheckWordBubbles(ctx context.Context, req *dto.WordBubblesRequest) (*dto.EvaluateResponse, error)
}

type evaluationService struct {
	evaluator *evaluator.Evaluator
}

// NewEvaluationService creates a new instance of evaluationService
func NewEvaluationService(ev *evaluator.Evaluator) EvaluationService {
	return &evaluationService{evaluator: ev}
}

// CheckAnswer implements EvaluationService
func (s *evaluationService) CheckAnswer(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluateResponse, error) {
	exerciseType, err := domain.ParseExerciseType(req.ExerciseType)
	if err != nil {
		return nil, err
	}
	ec := domain.ExerciseContext{Type: exerciseType, Prompt: req.Context, LessonKind: req.LessonKind}

	return s.run(ctx, ec, func(ctx context.Context) (evaluator.Result, error) {
		return s.evaluator.Evaluate(ctx, req.UserAnswer, req.ExpectedAnswer, ec)
	})
}

// CheckWordBubbles implements EvaluationService
func (s *evaluationService) CheckWordBubbles(ctx context.Context, req *dto.WordBubblesRequest) (*dto.EvaluateResponse, error) {
	ec := domain.ExerciseContext{Type: domain.ExerciseWordBubbles, Prompt: req.Context, LessonKind: req.LessonKind}

	return s.run(ctx, ec, func(ctx context.Context) (evaluator.Result, error) {
		return s.evaluator.WordAssembly(ctx, req.Selected, req.Distractors, req.ExpectedAnswer, ec)
	})
}

// run drives one evaluation through an Attempt so that a request abandoned
// by the client never has its late verdict applied.
func (s *evaluationService) run(ctx context.Context, ec domain.ExerciseContext, fn func(context.Context) (evaluator.Result, error)) (*dto.EvaluateResponse, error) {
	id := util.NewULID()
	l := logger.Get().With(zap.String("evaluation_id", id), zap.String("exercise_type", string(ec.Type)))

	attempt := evaluator.NewAttempt()
	if err := attempt.Start(ctx, fn); err != nil {
		return nil, domain.NewInternalError("Failed to start evaluation", err)
	}

	res, err := attempt.Wait(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			l.Info("Evaluation abandoned by caller", zap.Error(err))
			return nil, err
		}
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("Failed to evaluate answer", err)
	}

	l.Info("Answer evaluated",
		zap.Bool("is_correct", res.Verdict.IsCorrect),
		zap.String("lane", res.Decision.Lane.String()),
		zap.Bool("judged", res.Judged),
		zap.Bool("retryable", res.Retryable()))

	return toResponse(id, res), nil
}

func toResponse(id string, res evaluator.Result) *dto.EvaluateResponse {
	resp := &dto.EvaluateResponse{
		EvaluationID:       id,
		IsCorrect:          res.Verdict.IsCorrect,
		UserAnswer:         res.Verdict.UserAnswer,
		Outcome:            res.Decision.Outcome.String(),
		Lane:               res.Decision.Lane.String(),
		Similarity:         res.Decision.Similarity,
		NormalizedUser:     res.Decision.User.Canonical,
		NormalizedExpected: res.Decision.Expected.Canonical,
		Judged:             res.Judged,
		Retryable:          res.Retryable(),
	}
	switch {
	case errors.Is(res.JudgeErr, domain.ErrJudgeUnavailable):
		resp.Warning = WarningJudgeUnavailable
	case res.JudgeErr != nil:
		resp.Warning = WarningJudgeFailed
	}
	return resp
}
