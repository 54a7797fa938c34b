package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/calculator"
)

func newRootCmd() *cobra.Command {
	var asJSON bool

	root := &cobra.Command{
		Use:   "calc",
		Short: "Left-to-right calculator driven by key sequences",
		Long: `calc replays key sequences on the same state machine the calculator page uses.

Keys: 0-9 digits, + - * / (or x) operators, . decimal point, = evaluate,
c clear, < backspace. Operations apply strictly left to right.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print the display as JSON")

	root.AddCommand(newEvalCmd(&asJSON), newReplCmd(&asJSON))
	return root
}

// display is what both subcommands print after replaying keys.
type display struct {
	Current  string `json:"current"`
	Previous string `json:"previous"`
	Alert    string `json:"alert,omitempty"`
}

// replay applies every event of seq to c. A divide by zero does not stop the
// replay, matching what happens when the user dismisses the alert and keeps
// typing.
func replay(c *calculator.Calculator, seq string) (display, error) {
	events, err := calculator.ParseSequence(seq)
	if err != nil {
		return display{}, err
	}

	var out display
	for _, ev := range events {
		if err := c.Apply(ev); err != nil {
			if !errors.Is(err, calculator.ErrDivideByZero) {
				return display{}, err
			}
			out.Alert = calculator.DivideByZeroAlert
		}
	}

	d := c.Display()
	out.Current = d.Current
	out.Previous = d.Previous
	return out, nil
}

func printDisplay(w io.Writer, d display, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(d)
	}

	if d.Alert != "" {
		if _, err := fmt.Fprintf(w, "! %s\n", d.Alert); err != nil {
			return err
		}
	}
	if d.Previous != "" {
		if _, err := fmt.Fprintln(w, d.Previous); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, d.Current)
	return err
}
