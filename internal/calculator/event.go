package calculator

import (
	"fmt"
	"unicode"
)

// EventKind identifies which transition an input event triggers.
type EventKind int

const (
	EventDigit EventKind = iota + 1
	EventOperator
	EventDecimal
	EventEquals
	EventClear
	EventBackspace
	EventToggleTheme
)

var eventKindNames = map[EventKind]string{
	EventDigit:       "digit",
	EventOperator:    "operator",
	EventDecimal:     "decimal",
	EventEquals:      "equals",
	EventClear:       "clear",
	EventBackspace:   "backspace",
	EventToggleTheme: "theme",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one user input: a button click or a key press.
type Event struct {
	Kind  EventKind
	Digit rune      // set for EventDigit
	Op    Operation // set for EventOperator
}

func (e Event) String() string {
	switch e.Kind {
	case EventDigit:
		return fmt.Sprintf("digit(%c)", e.Digit)
	case EventOperator:
		return fmt.Sprintf("operator(%s)", e.Op)
	default:
		return e.Kind.String()
	}
}

// Events without a payload.
var (
	Decimal     = Event{Kind: EventDecimal}
	Equals      = Event{Kind: EventEquals}
	ClearEvent  = Event{Kind: EventClear}
	Backspace   = Event{Kind: EventBackspace}
	ToggleTheme = Event{Kind: EventToggleTheme}
)

// DigitEvent returns the event for pressing digit d.
func DigitEvent(d rune) Event { return Event{Kind: EventDigit, Digit: d} }

// OperatorEvent returns the event for choosing op.
func OperatorEvent(op Operation) Event { return Event{Kind: EventOperator, Op: op} }

// transitions is the dispatch table from event kind to state-machine method.
var transitions = map[EventKind]func(*Calculator, Event) error{
	EventDigit: func(c *Calculator, e Event) error {
		c.AppendDigit(e.Digit)
		return nil
	},
	EventOperator: func(c *Calculator, e Event) error {
		return c.ChooseOperation(e.Op)
	},
	EventDecimal: func(c *Calculator, _ Event) error {
		c.InsertDecimalPoint()
		return nil
	},
	EventEquals: func(c *Calculator, _ Event) error {
		return c.Evaluate()
	},
	EventClear: func(c *Calculator, _ Event) error {
		c.Clear()
		return nil
	},
	EventBackspace: func(c *Calculator, _ Event) error {
		c.DeleteLastCharacter()
		return nil
	},
	EventToggleTheme: func(c *Calculator, _ Event) error {
		c.ToggleDarkMode()
		return nil
	},
}

// Apply runs the single transition for e. The only error a valid event can
// produce is ErrDivideByZero.
func (c *Calculator) Apply(e Event) error {
	fn, ok := transitions[e.Kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownInput, e)
	}
	if e.Kind == EventDigit && !isDigit(e.Digit) {
		return fmt.Errorf("%w: %s", ErrUnknownInput, e)
	}
	if e.Kind == EventOperator && e.Op == OpNone {
		return fmt.Errorf("%w: %s", ErrUnknownInput, e)
	}
	return fn(c, e)
}

var keyEvents = map[string]Event{
	"+":         OperatorEvent(OpAdd),
	"-":         OperatorEvent(OpSubtract),
	"*":         OperatorEvent(OpMultiply),
	"/":         OperatorEvent(OpDivide),
	".":         Decimal,
	"=":         Equals,
	"Enter":     Equals,
	"Backspace": Backspace,
	"Escape":    ClearEvent,
	"Delete":    ClearEvent,
}

// KeyEvent maps a keyboard key name (as reported by KeyboardEvent.key) to its
// event. ok is false for keys the calculator does not handle.
func KeyEvent(key string) (Event, bool) {
	if r := []rune(key); len(r) == 1 && isDigit(r[0]) {
		return DigitEvent(r[0]), true
	}
	e, ok := keyEvents[key]
	return e, ok
}

// ButtonEvent maps a page button to its event. Digit buttons carry their
// value in number; the others are identified by action.
func ButtonEvent(action, number string) (Event, error) {
	switch action {
	case "", "digit", "number":
		r := []rune(number)
		if len(r) != 1 || !isDigit(r[0]) {
			return Event{}, fmt.Errorf("%w: digit %q", ErrUnknownInput, number)
		}
		return DigitEvent(r[0]), nil
	case "decimal":
		return Decimal, nil
	case "equals":
		return Equals, nil
	case "clear":
		return ClearEvent, nil
	case "backspace":
		return Backspace, nil
	case "theme":
		return ToggleTheme, nil
	}

	op, err := ParseOperation(action)
	if err != nil {
		return Event{}, err
	}
	return OperatorEvent(op), nil
}

// ParseSequence turns a compact key string into events. Besides the keyboard
// characters it accepts 'x' for multiply, 'c' for clear and '<' for
// backspace. Whitespace is skipped.
func ParseSequence(s string) ([]Event, error) {
	events := make([]Event, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case 'x', 'X', '×':
			events = append(events, OperatorEvent(OpMultiply))
			continue
		case '÷':
			events = append(events, OperatorEvent(OpDivide))
			continue
		case '−':
			events = append(events, OperatorEvent(OpSubtract))
			continue
		case 'c', 'C':
			events = append(events, ClearEvent)
			continue
		case '<':
			events = append(events, Backspace)
			continue
		}
		e, ok := KeyEvent(string(r))
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownInput, r, i)
		}
		events = append(events, e)
	}
	return events, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
