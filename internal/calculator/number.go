package calculator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// resultScale rounds results to 8 decimal places.
const resultScale = 1e8

// operandPrefix matches the longest leading decimal literal, the way a browser's
// parseFloat reads "1e+" as 1 and ignores trailing garbage.
var operandPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// parseOperand reads s as a decimal number. NaN and strings without a numeric
// prefix are reported as not ok.
func parseOperand(s string) (float64, bool) {
	lit := operandPrefix.FindString(strings.TrimLeft(s, " \t\n\r"))
	if lit == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// roundResult rounds v to 8 decimal places, halves toward +Inf. floor(x+0.5)
// is wrong here: above 2^52 the addition itself ties to even.
func roundResult(v float64) float64 {
	x := v * resultScale
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return v
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r / resultScale
}

// formatResult renders v the way the page has always shown numbers: shortest
// round-trip digits, exponent form only for very large or very small values.
func formatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
