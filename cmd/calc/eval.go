package main

import (
	"strings"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/calculator"
)

func newEvalCmd(asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <keys>...",
		Short: "Replay a key sequence on a fresh calculator and print the display",
		Example: `  calc eval "5+3+2="
  calc eval 0.1 + 0.2 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := replay(calculator.New(), strings.Join(args, ""))
			if err != nil {
				return err
			}
			return printDisplay(cmd.OutOrStdout(), d, *asJSON)
		},
	}
}
