package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/calculator"
)

func newReplCmd(asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read key sequences line by line and keep one calculator between them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := calculator.New()
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())

			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "quit", "exit":
					return nil
				}

				d, err := replay(c, line)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
					continue
				}
				if err := printDisplay(out, d, *asJSON); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
}
