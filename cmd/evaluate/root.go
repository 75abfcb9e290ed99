package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"lingo-practice/internal/adapter/judge"
	"lingo-practice/internal/config"
	"lingo-practice/internal/domain"
	"lingo-practice/internal/evaluator"
	"lingo-practice/internal/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "evaluate",
		Short:         "Check learner answers from the command line",
		Long:          "evaluate runs the answer evaluator locally, optionally asking the configured semantic judge.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("judge", false, "Ask the judge from config.yaml for deferred answers")
	root.PersistentFlags().Duration("timeout", 30*time.Second, "Overall time limit for one evaluation")
	root.PersistentFlags().String("context", "", "Original prompt passed to the judge")
	root.PersistentFlags().String("lesson", "", "Lesson kind passed to the judge")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newWordsCmd())
	root.AddCommand(newNormalizeCmd())
	return root
}

// buildEvaluator returns a judge-less evaluator with default thresholds unless
// --judge is set, in which case config.yaml supplies both.
func buildEvaluator(cmd *cobra.Command) (*evaluator.Evaluator, error) {
	useJudge, _ := cmd.Flags().GetBool("judge")
	if !useJudge {
		return evaluator.New(nil, nil), nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	j, err := judge.New(cfg.Judge, nil)
	if err != nil {
		return nil, fmt.Errorf("create judge: %w", err)
	}
	policy := evaluator.NewPolicy(evaluator.Thresholds{
		Accept:         cfg.Evaluator.AcceptThreshold,
		Defer:          cfg.Evaluator.DeferThreshold,
		MinDeferTokens: cfg.Evaluator.MinDeferTokens,
	})
	return evaluator.New(policy, j), nil
}

func exerciseContext(cmd *cobra.Command, t domain.ExerciseType) domain.ExerciseContext {
	prompt, _ := cmd.Flags().GetString("context")
	lesson, _ := cmd.Flags().GetString("lesson")
	return domain.ExerciseContext{Type: t, Prompt: prompt, LessonKind: lesson}
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return context.WithTimeout(cmd.Context(), timeout)
}

func printResult(w io.Writer, res evaluator.Result) {
	verdict := "INCORRECT"
	if res.Verdict.IsCorrect {
		verdict = "CORRECT"
	}
	fmt.Fprintf(w, "%s\n", verdict)
	fmt.Fprintf(w, "  answer:     %s\n", res.Verdict.UserAnswer)
	fmt.Fprintf(w, "  lane:       %s (%s)\n", res.Decision.Lane, res.Decision.Outcome)
	fmt.Fprintf(w, "  similarity: %.3f\n", res.Decision.Similarity)
	fmt.Fprintf(w, "  user:       %s\n", res.Decision.User.Combined)
	fmt.Fprintf(w, "  expected:   %s\n", res.Decision.Expected.Combined)
	if res.Judged {
		fmt.Fprintln(w, "  judged:     yes")
	}
	if res.JudgeErr != nil {
		fmt.Fprintf(w, "  warning:    judge failed, marked incorrect (%v)\n", res.JudgeErr)
	}
}
