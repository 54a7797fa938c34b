// Package calculator implements the entry state machine behind the calculator
// page: digits build up the current operand, choosing an operator parks it as
// the previous operand, and evaluation applies the single pending operation.
// Operations are strictly left to right; there is no precedence.
package calculator

import (
	"errors"
	"strings"
)

const initialOperand = "0"

// Calculator owns the state of one calculator session. Its methods are the
// only mutators. A Calculator is not safe for concurrent use.
type Calculator struct {
	current    string
	previous   string
	op         Operation
	entryReset bool
	darkMode   bool
}

// State is a read-only copy of the calculator's entry fields.
type State struct {
	Current    string
	Previous   string
	Operation  Operation
	EntryReset bool
}

// Display is what the page renders: the operand being entered and the line
// above it holding the previous operand with its operator symbol.
type Display struct {
	Current  string `json:"current"`
	Previous string `json:"previous"`
}

// New returns a calculator in its initial state.
func New() *Calculator {
	return &Calculator{current: initialOperand}
}

// AppendDigit enters one digit. The digit replaces the operand when it is
// "0" or when the previous transition finished an entry. Anything other than
// '0'-'9' is ignored.
func (c *Calculator) AppendDigit(d rune) {
	if !isDigit(d) {
		return
	}
	if c.current == initialOperand || c.entryReset {
		c.current = string(d)
		c.entryReset = false
		return
	}
	c.current += string(d)
}

// ChooseOperation makes op the pending operation. A pending operation is
// evaluated first so that chains like 5 + 3 + 2 run left to right. If that
// evaluation divides by zero the calculator is reset and no operation is left
// pending.
func (c *Calculator) ChooseOperation(op Operation) error {
	if c.current == "" {
		return nil
	}
	if c.previous != "" {
		if err := c.Evaluate(); err != nil {
			return err
		}
	}
	c.op = op
	c.previous = c.current
	c.entryReset = true
	return nil
}

// Evaluate applies the pending operation to the previous and current
// operands. It does nothing when either operand does not parse or no
// operation is pending. Dividing by zero resets the calculator and returns
// ErrDivideByZero.
func (c *Calculator) Evaluate() error {
	prev, ok := parseOperand(c.previous)
	if !ok {
		return nil
	}
	cur, ok := parseOperand(c.current)
	if !ok {
		return nil
	}

	result, err := c.op.apply(prev, cur)
	switch {
	case errors.Is(err, ErrDivideByZero):
		c.Clear()
		return err
	case err != nil:
		return nil
	}

	c.current = formatResult(roundResult(result))
	c.op = OpNone
	c.previous = ""
	c.entryReset = true
	return nil
}

// Clear returns the entry fields to their initial values. The theme is kept.
func (c *Calculator) Clear() {
	c.current = initialOperand
	c.previous = ""
	c.op = OpNone
	c.entryReset = false
}

// DeleteLastCharacter removes the last character of the current operand,
// falling back to "0" when only one is left.
func (c *Calculator) DeleteLastCharacter() {
	if len(c.current) <= 1 {
		c.current = initialOperand
		return
	}
	c.current = c.current[:len(c.current)-1]
}

// InsertDecimalPoint starts "0." on a fresh entry, otherwise appends a point
// unless the operand already has one.
func (c *Calculator) InsertDecimalPoint() {
	if c.entryReset {
		c.current = "0."
		c.entryReset = false
		return
	}
	if strings.Contains(c.current, ".") {
		return
	}
	c.current += "."
}

// ToggleDarkMode flips the cosmetic theme flag and returns the new value.
func (c *Calculator) ToggleDarkMode() bool {
	c.darkMode = !c.darkMode
	return c.darkMode
}

// DarkMode reports whether the session prefers the dark theme.
func (c *Calculator) DarkMode() bool { return c.darkMode }

// State returns a copy of the entry fields.
func (c *Calculator) State() State {
	return State{
		Current:    c.current,
		Previous:   c.previous,
		Operation:  c.op,
		EntryReset: c.entryReset,
	}
}

// Display projects the state onto the two display lines.
func (c *Calculator) Display() Display {
	d := Display{Current: c.current, Previous: c.previous}
	if c.op != OpNone {
		d.Previous = c.previous + " " + c.op.Symbol()
	}
	return d
}
