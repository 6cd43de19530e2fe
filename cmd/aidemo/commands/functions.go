package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/aidemo/internal/functioncall"
)

func newSQLCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sql [request]",
		Short:   "Turn a request into a SQL statement",
		Example: `  aidemo sql find user John`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := functioncall.RunSQL(strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading(out, "Operation: "+string(res.Operation))
			field(out, "Result", res.Result)
			field(out, "Query", res.RawQuery)
			field(out, "Interpretation", res.Interpretation)
			return nil
		},
	}
}

func newCreditCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "credit [description]",
		Short:   "Extract credit score parameters from text and score them",
		Example: `  aidemo credit income 75000, 5 years history, 30% ratio, age 35, 0 defaults`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := functioncall.RunCredit(strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading(out, "Function: "+res.FunctionCalled)
			field(out, "Score", fmt.Sprintf("%d (%s)", res.CreditScore, res.Rating))
			fmt.Fprintln(out)
			fmt.Fprintln(out, res.Interpretation)
			return nil
		},
	}
}
