package calcapi

import (
	"fmt"

	"go-chi-calculator/internal/calculator"
)

// EventRequest is one input event. Keyboard input sets Key (as reported by
// KeyboardEvent.key); button clicks set Action and, for digits, Number.
type EventRequest struct {
	Key    string `json:"key,omitempty"`
	Action string `json:"action,omitempty"`
	Number string `json:"number,omitempty"`
}

func (req EventRequest) event() (calculator.Event, error) {
	if req.Key != "" {
		ev, ok := calculator.KeyEvent(req.Key)
		if !ok {
			return calculator.Event{}, fmt.Errorf("%w: key %q", calculator.ErrUnknownInput, req.Key)
		}
		return ev, nil
	}
	return calculator.ButtonEvent(req.Action, req.Number)
}

// DisplayResponse is the JSON body returned after every transition.
type DisplayResponse struct {
	SessionID string `json:"session_id,omitempty"`
	Current   string `json:"current"`
	Previous  string `json:"previous"`
	DarkMode  bool   `json:"dark_mode"`
	Alert     string `json:"alert,omitempty"` // set when the page must show a blocking notification
}

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Sequence string `json:"sequence"` // e.g. "5+3+2="
}

// EvaluateResponse is the JSON response for POST /calculator/evaluate.
type EvaluateResponse struct {
	Sequence string `json:"sequence"`
	Events   int    `json:"events"`
	Current  string `json:"current"`
	Previous string `json:"previous"`
	Alert    string `json:"alert,omitempty"`
}

// socketError is sent over the WebSocket when a frame cannot be applied.
type socketError struct {
	Error string `json:"error"`
}

func displayResponse(id string, c *calculator.Calculator) DisplayResponse {
	d := c.Display()
	return DisplayResponse{
		SessionID: id,
		Current:   d.Current,
		Previous:  d.Previous,
		DarkMode:  c.DarkMode(),
	}
}
