/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/interval/internal/calc"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool
	checkCmd := &cobra.Command{
		Use:   "check A RELATION B",
		Short: "Tell whether a relation holds between two intervals",
		Long: `Check prints true when RELATION holds between the intervals A and B and
false otherwise; the exit code is 0 or 1 accordingly.

RELATION is one of: ` + strings.Join(calc.Relations, ", ") + `.
For contains, B is a single value.`,
		Example: `  interval check "[0, 10]" includes "[2, 3]"
  interval check "(20, 30]" strictly-consecutive "(30, 40)"
  interval --type float check "[0, 1)" contains 0.5`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeArg(1, calc.Relations),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.engine.Check(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), a.paintBool(ok))
			}
			if !ok {
				return errFalse
			}
			return nil
		},
	}
	checkCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing, answer through the exit code only")
	return checkCmd
}
