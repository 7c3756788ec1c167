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

func newSetCmd(a *app) *cobra.Command {
	var (
		formats    []string
		remove     []string
		complement bool
		span       bool
		contains   string
	)
	setCmd := &cobra.Command{
		Use:   "set INTERVAL...",
		Short: "Merge intervals into their normalized union",
		Long: `Set prints the union of the given intervals as a list of maximal,
separated intervals in ascending order.

With --format, each argument may hold several intervals separated by commas,
newlines or spaces (outside brackets), or a JSON array of strings; the result
is printed in the first listed format.`,
		Example: `  interval set "[0, 1]" "(1, 2)" "[5, 6]"
  interval set --format comma "[0, 10], [20, 30]" --remove "(2, 3)" --complement
  interval set --contains 7 "<0" ">5"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := calc.ParseMultiValues(formats, args)
			if err != nil {
				return err
			}
			removed, err := calc.ParseMultiValues(formats, remove)
			if err != nil {
				return err
			}
			opts := calc.SetOptions{Remove: removed, Complement: complement}
			if cmd.Flags().Changed("contains") {
				opts.Contains = &contains
			}
			res, err := a.engine.Set(members, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case opts.Contains != nil:
				fmt.Fprintln(out, a.paintBool(res.Contains))
				if !res.Contains {
					return errFalse
				}
			case span:
				fmt.Fprintln(out, a.paintInterval(res.Span))
			case len(formats) > 0:
				text, err := calc.OutputMultiValues(formats, res.Members)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, text)
			default:
				fmt.Fprintln(out, res.Text)
			}
			return nil
		},
	}
	setCmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "multi value format: "+strings.Join(calc.AllowedMultiFormats, ", "))
	setCmd.Flags().StringArrayVarP(&remove, "remove", "r", nil, "interval to take out of the union, repeatable")
	setCmd.Flags().BoolVarP(&complement, "complement", "c", false, "print the values outside the union instead")
	setCmd.Flags().BoolVar(&span, "span", false, "print the smallest interval including the result")
	setCmd.Flags().StringVar(&contains, "contains", "", "print whether the result holds this value")
	registerChoices(setCmd, "format", calc.AllowedMultiFormats)
	return setCmd
}
