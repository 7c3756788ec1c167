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

func newCalcCmd(a *app) *cobra.Command {
	var (
		exportName string
		persist    bool
	)
	calcCmd := &cobra.Command{
		Use:   "calc A OPERATION B",
		Short: "Intersect, unify or subtract two intervals",
		Long: `Calc prints the interval resulting from OPERATION applied to A and B.

OPERATION is one of: ` + strings.Join(calc.Operations, ", ") + `.
unify and subtract fail with exit code 1 when the exact result is made of two
separate pieces.

With --export NAME the result is printed as a shell assignment of NAME instead,
so that scripts can eval it.`,
		Example: `  interval calc "[0, 10]" intersect "[5, 15]"
  interval calc "[0, 10]" unify "[10, 20)"
  eval "$(interval calc --export RANGE '>5' subtract '<=7')"`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeArg(1, calc.Operations),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.engine.Calc(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if exportName == "" {
				fmt.Fprintln(cmd.OutOrStdout(), a.paintInterval(res))
				return nil
			}
			shell, err := a.shellType()
			if err != nil {
				return err
			}
			line, err := calc.Export{Name: exportName, Shell: shell, Persist: persist}.Assignment(res)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	calcCmd.Flags().StringVarP(&exportName, "export", "e", "", "print the result as an assignment of this variable")
	calcCmd.Flags().BoolVar(&persist, "persist", false, "with --export, make the variable outlive the current session")
	return calcCmd
}
