package calculator

import (
	"math"
	"testing"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "0", want: 0, wantOK: true},
		{in: "42", want: 42, wantOK: true},
		{in: "7.", want: 7, wantOK: true},
		{in: "0.25", want: 0.25, wantOK: true},
		{in: "-3.5", want: -3.5, wantOK: true},
		{in: "1e+21", want: 1e21, wantOK: true},
		{in: "1e+", want: 1, wantOK: true},
		{in: "5e-7", want: 5e-7, wantOK: true},
		{in: "12abc", want: 12, wantOK: true},
		{in: "", wantOK: false},
		{in: ".", wantOK: false},
		{in: "abc", wantOK: false},
		{in: "NaN", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := parseOperand(tc.in)
			if ok != tc.wantOK {
				t.Fatalf("parseOperand(%q): expected ok=%t, got %t", tc.in, tc.wantOK, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("parseOperand(%q): expected %g, got %g", tc.in, tc.want, got)
			}
		})
	}
}

func TestParseOperandInfinity(t *testing.T) {
	for _, in := range []string{"Infinity", "-Infinity", "1e400"} {
		got, ok := parseOperand(in)
		if !ok || !math.IsInf(got, 0) {
			t.Fatalf("parseOperand(%q): expected infinity, got %g (ok=%t)", in, got, ok)
		}
	}
}

func TestRoundResult(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.1 + 0.2, want: 0.3},
		{in: 1.0 / 3.0, want: 0.33333333},
		{in: 2.0 / 3.0, want: 0.66666667},
		{in: 1e-9, want: 0},
		{in: 5, want: 5},
		{in: -2.5, want: -2.5},
		{in: -0.000000005, want: 0},
		{in: 0.000000005, want: 0.00000001},
		{in: 50000000.00000001, want: 50000000.00000001},
		{in: 45035996.27370497, want: 45035996.27370497},
		{in: 123456789.12345678, want: 123456789.12345678},
	}

	for _, tc := range tests {
		if got := roundResult(tc.in); got != tc.want {
			t.Fatalf("roundResult(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestRoundResultPassesNonFinite(t *testing.T) {
	if got := roundResult(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf, got %v", got)
	}
	if got := roundResult(math.Inf(-1)); !math.IsInf(got, -1) {
		t.Fatalf("expected -Inf, got %v", got)
	}
	if got := roundResult(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v", got)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 10, want: "10"},
		{in: -1, want: "-1"},
		{in: 0.3, want: "0.3"},
		{in: 3.5, want: "3.5"},
		{in: 1e20, want: "100000000000000000000"},
		{in: 1e21, want: "1e+21"},
		{in: 1.5e22, want: "1.5e+22"},
		{in: 5e-7, want: "5e-7"},
		{in: 0.000001, want: "0.000001"},
		{in: math.Inf(1), want: "Infinity"},
		{in: math.Inf(-1), want: "-Infinity"},
		{in: math.NaN(), want: "NaN"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := formatResult(tc.in); got != tc.want {
				t.Fatalf("formatResult(%v): expected %q, got %q", tc.in, tc.want, got)
			}
		})
	}
}
