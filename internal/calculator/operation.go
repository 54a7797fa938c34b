package calculator

import "fmt"

// Operation is the arithmetic operator pending between two operands.
type Operation int

const (
	OpNone Operation = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = map[Operation]string{
	OpNone:     "none",
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

// String returns the action name used by the page buttons ("add", "divide", ...).
func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// Symbol returns the glyph shown on the previous-operand line.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// ParseOperation maps an action name back to its Operation. OpNone is not
// accepted since it cannot be chosen.
func ParseOperation(name string) (Operation, error) {
	for op, n := range operationNames {
		if op != OpNone && n == name {
			return op, nil
		}
	}
	return OpNone, fmt.Errorf("%w: operation %q", ErrUnknownInput, name)
}

func (op Operation) apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, errNoOperation
	}
}
