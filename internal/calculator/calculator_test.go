package calculator

import (
	"errors"
	"testing"
)

func run(t *testing.T, seq string) (*Calculator, error) {
	t.Helper()
	events, err := ParseSequence(seq)
	if err != nil {
		t.Fatalf("parsing %q: %v", seq, err)
	}
	c := New()
	var last error
	for _, e := range events {
		if err := c.Apply(e); err != nil {
			last = err
		}
	}
	return c, last
}

func assertState(t *testing.T, c *Calculator, want State) {
	t.Helper()
	if got := c.State(); got != want {
		t.Fatalf("expected state %+v, got %+v", want, got)
	}
}

func TestNewStartsAtInitialState(t *testing.T) {
	c := New()
	assertState(t, c, State{Current: "0", Previous: "", Operation: OpNone})

	d := c.Display()
	if d.Current != "0" || d.Previous != "" {
		t.Fatalf("expected display (0, \"\"), got %+v", d)
	}
}

func TestAppendDigitConcatenatesEntries(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{seq: "7", want: "7"},
		{seq: "123", want: "123"},
		{seq: "0", want: "0"},
		{seq: "007", want: "7"},
		{seq: "1000", want: "1000"},
		{seq: "9876543210", want: "9876543210"},
	}

	for _, tc := range tests {
		t.Run(tc.seq, func(t *testing.T) {
			c, err := run(t, tc.seq)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.State().Current; got != tc.want {
				t.Fatalf("expected current %q, got %q", tc.want, got)
			}
		})
	}
}

func TestAppendDigitIgnoresNonDigits(t *testing.T) {
	c := New()
	c.AppendDigit('a')
	assertState(t, c, State{Current: "0"})
}

func TestChooseOperationParksOperand(t *testing.T) {
	c, _ := run(t, "12+")
	assertState(t, c, State{Current: "12", Previous: "12", Operation: OpAdd, EntryReset: true})

	if got := c.Display().Previous; got != "12 +" {
		t.Fatalf("expected previous line %q, got %q", "12 +", got)
	}

	c.AppendDigit('3')
	assertState(t, c, State{Current: "3", Previous: "12", Operation: OpAdd})
}

func TestSecondOperatorEvaluatesAgainstParkedOperand(t *testing.T) {
	// No digit between the operators, so 4 - 4 is evaluated first.
	c, _ := run(t, "4-*")
	assertState(t, c, State{Current: "0", Previous: "0", Operation: OpMultiply, EntryReset: true})
}

func TestEvaluateOperations(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{name: "add", seq: "2+3=", want: "5"},
		{name: "subtract", seq: "2-3=", want: "-1"},
		{name: "multiply", seq: "6*7=", want: "42"},
		{name: "divide", seq: "7/2=", want: "3.5"},
		{name: "rounding", seq: ".1+.2=", want: "0.3"},
		{name: "eight places", seq: "2/3=", want: "0.66666667"},
		{name: "tiny rounds to zero", seq: "1/1000000000=", want: "0"},
		{name: "decimal operands", seq: "1.5*4=", want: "6"},
		{name: "trailing point", seq: "5.+1=", want: "6"},
		{name: "large", seq: "1000000*1000000=", want: "1000000000000"},
		{name: "identity multiply keeps eight places", seq: "50000000.00000001*1=", want: "50000000.00000001"},
		{name: "identity add keeps eight places", seq: "45035996.27370497+0=", want: "45035996.27370497"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := run(t, tc.seq)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertState(t, c, State{Current: tc.want, EntryReset: true})
		})
	}
}

func TestChainedOperationsApplyLeftToRight(t *testing.T) {
	c, _ := run(t, "5+3+")
	assertState(t, c, State{Current: "8", Previous: "8", Operation: OpAdd, EntryReset: true})

	c.AppendDigit('2')
	if err := c.Evaluate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.State().Current; got != "10" {
		t.Fatalf("expected 10, got %q", got)
	}

	c, _ = run(t, "2+3*4=")
	if got := c.State().Current; got != "20" {
		t.Fatalf("expected no precedence (20), got %q", got)
	}
}

func TestEvaluateTwiceIsNoOp(t *testing.T) {
	c, _ := run(t, "9-4=")
	first := c.State()

	if err := c.Evaluate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.State(); got != first {
		t.Fatalf("expected second evaluate to be a no-op, %+v != %+v", got, first)
	}
}

func TestEvaluateWithoutPendingOperationIsNoOp(t *testing.T) {
	c, _ := run(t, "42=")
	assertState(t, c, State{Current: "42"})
}

func TestEvaluateUnparsableOperandIsSilent(t *testing.T) {
	c := New()
	c.current = "abc"
	c.previous = "3"
	c.op = OpAdd

	if err := c.Evaluate(); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	assertState(t, c, State{Current: "abc", Previous: "3", Operation: OpAdd})
}

func TestDivideByZeroResets(t *testing.T) {
	for _, seq := range []string{"8/0=", "8/0.=", "8/0.0=", "3.5/0+", "1+2/0/"} {
		t.Run(seq, func(t *testing.T) {
			c, err := run(t, seq)
			if !errors.Is(err, ErrDivideByZero) {
				t.Fatalf("expected ErrDivideByZero, got %v", err)
			}
			assertState(t, c, State{Current: "0", Previous: "", Operation: OpNone})
			if d := c.Display(); d.Previous != "" {
				t.Fatalf("expected empty previous line, got %q", d.Previous)
			}
		})
	}
}

func TestClearResetsEntryFields(t *testing.T) {
	c, _ := run(t, "12+3")
	c.ToggleDarkMode()
	c.Clear()

	assertState(t, c, State{Current: "0"})
	if !c.DarkMode() {
		t.Fatal("expected clear to keep the theme")
	}
}

func TestClearAfterResultStartsFreshEntry(t *testing.T) {
	c, _ := run(t, "2+2=c5")
	assertState(t, c, State{Current: "5"})
}

func TestDeleteLastCharacter(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{seq: "7<", want: "0"},
		{seq: "7.5<", want: "7."},
		{seq: "123<", want: "12"},
		{seq: "123<<<", want: "0"},
		{seq: "<", want: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.seq, func(t *testing.T) {
			c, _ := run(t, tc.seq)
			if got := c.State().Current; got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInsertDecimalPoint(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{name: "initial", seq: ".", want: "0."},
		{name: "twice", seq: "..", want: "0."},
		{name: "after digits", seq: "12.5", want: "12.5"},
		{name: "second point ignored", seq: "1.2.3", want: "1.23"},
		{name: "after operator", seq: "3+.", want: "0."},
		{name: "after result", seq: "1+1=.5", want: "0.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := run(t, tc.seq)
			if got := c.State().Current; got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDisplaySymbols(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{op: OpAdd, want: "9 +"},
		{op: OpSubtract, want: "9 −"},
		{op: OpMultiply, want: "9 ×"},
		{op: OpDivide, want: "9 ÷"},
	}

	for _, tc := range tests {
		t.Run(tc.op.String(), func(t *testing.T) {
			c := New()
			c.AppendDigit('9')
			if err := c.ChooseOperation(tc.op); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.Display(); got.Previous != tc.want || got.Current != "9" {
				t.Fatalf("expected (9, %q), got %+v", tc.want, got)
			}
		})
	}
}

func TestResultCanBeExtendedAfterBackspace(t *testing.T) {
	c, _ := run(t, "10/4=<")
	assertState(t, c, State{Current: "2.", EntryReset: true})

	c.AppendDigit('7')
	assertState(t, c, State{Current: "7"})
}
