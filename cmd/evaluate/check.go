package main

import (
	"strings"

	"lingo-practice/internal/domain"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <answer...>",
		Short: "Check a typed translation or dictation",
		Example: `  evaluate check --expected "I am going to the store" "I'm going to the store."
  evaluate check --type listening --expected "Where's the station?" wheres the station`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expected, _ := cmd.Flags().GetString("expected")
			typeName, _ := cmd.Flags().GetString("type")

			exerciseType, err := domain.ParseExerciseType(typeName)
			if err != nil {
				return err
			}

			ev, err := buildEvaluator(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			res, err := ev.Evaluate(ctx, strings.Join(args, " "), expected, exerciseContext(cmd, exerciseType))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().String("expected", "", "Reference answer")
	cmd.Flags().String("type", string(domain.ExerciseTranslateTyping), "Exercise type: translate-typing, listening or word-bubbles")
	_ = cmd.MarkFlagRequired("expected")
	return cmd
}
