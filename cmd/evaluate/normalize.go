package main

import (
	"fmt"
	"strings"

	"lingo-practice/internal/normalize"

	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text...>",
		Short: "Show every normalized form of a sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := normalize.Analyze(strings.Join(args, " "))
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "folded:         %s\n", v.Folded)
			fmt.Fprintf(w, "canonical:      %s\n", v.Canonical)
			fmt.Fprintf(w, "time ordered:   %s\n", v.TimeOrdered)
			fmt.Fprintf(w, "adverb ordered: %s\n", v.AdverbOrdered)
			fmt.Fprintf(w, "gender neutral: %s\n", v.GenderNeutral)
			fmt.Fprintf(w, "combined:       %s\n", v.Combined)
			return nil
		},
	}
}
