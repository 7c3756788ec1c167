/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/interval/internal/calc"
)

func newRelateCmd(a *app) *cobra.Command {
	relateCmd := &cobra.Command{
		Use:   "relate A B",
		Short: "Describe how two intervals relate",
		Long: `Relate prints the relation between A and B (one of disjoint, adjacent,
equal, includes, included-by, overlaps), every relation that holds, and the
intersection, union and difference of the two where they are single intervals.`,
		Example: `  interval relate "[0, 10]" "[5, 15]"
  interval relate -o json "(20, 30]" "(30, 40)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.engine.Relate(args[0], args[1])
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), a.v.GetString("output"))
		},
	}
	relateCmd.Flags().StringP("output", "o", "text", "output format: "+strings.Join(calc.OutputFormats, ", "))
	bindFlags(a.v, relateCmd.Flags(), "output")
	registerChoices(relateCmd, "output", calc.OutputFormats)
	return relateCmd
}
