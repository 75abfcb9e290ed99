package main

import (
	"lingo-practice/internal/domain"

	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "words <token...>",
		Short:   "Check a word-bubble assembly",
		Example: `  evaluate words --expected "I go to school" --distractor went school to I go`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expected, _ := cmd.Flags().GetString("expected")
			distractors, _ := cmd.Flags().GetStringSlice("distractor")

			ev, err := buildEvaluator(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			res, err := ev.WordAssembly(ctx, args, distractors, expected, exerciseContext(cmd, domain.ExerciseWordBubbles))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().String("expected", "", "Reference answer")
	cmd.Flags().StringSlice("distractor", nil, "Word offered but not selected (repeatable)")
	_ = cmd.MarkFlagRequired("expected")
	return cmd
}
