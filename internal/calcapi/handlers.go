// Package calcapi exposes calculator sessions over HTTP and WebSocket. Every
// request applies at most one event to one session and answers with the two
// display lines.
package calcapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler serves the calculator endpoints backed by a session store.
type Handler struct {
	store *session.Store
}

func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

// ---------------------------------------------------------------------------
// Handlers — session lifecycle
// ---------------------------------------------------------------------------

// CreateSession handles POST /calculator/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := observability.LoggerWithTrace(r.Context())

	id, d := h.store.Create()

	logger.Info("calculator session created",
		zap.String("session_id", id),
		zap.String("request_id", observability.RequestIDFromContext(r.Context())),
	)

	handlers.WriteJSON(w, http.StatusCreated, DisplayResponse{
		SessionID: id,
		Current:   d.Current,
		Previous:  d.Previous,
	})
}

// GetSession handles GET /calculator/sessions/{sessionID}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	var resp DisplayResponse
	err := h.store.Do(id, func(c *calculator.Calculator) error {
		resp = displayResponse(id, c)
		return nil
	})
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// DeleteSession handles DELETE /calculator/sessions/{sessionID}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	if err := h.store.Delete(id); err != nil {
		handlers.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Handlers — input events
// ---------------------------------------------------------------------------

// PostEvent handles POST /calculator/sessions/{sessionID}/events
func (h *Handler) PostEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	id := chi.URLParam(r, "sessionID")

	ctx, span := tracer.Start(ctx, "calculator.event",
		trace.WithAttributes(
			attribute.String("calculator.session_id", id),
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	defer span.End()

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "event", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	ev, err := req.event()
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "event", "unknown input", err, http.StatusBadRequest, w)
		return
	}

	resp, err := h.apply(ctx, id, ev)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, ev.Kind.String(), err.Error(), err, statusFor(err), w)
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// apply runs one event on the session in its own child span. A divide by zero
// is not a failure of the request: the session has been reset and the
// response carries the alert text. The only error is an unknown session.
func (h *Handler) apply(ctx context.Context, id string, ev calculator.Event) (DisplayResponse, error) {
	logger := observability.LoggerWithTrace(ctx)
	kind := ev.Kind.String()

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", kind),
		trace.WithAttributes(
			attribute.String("calculator.event", ev.String()),
			attribute.String("calculator.session_id", id),
		),
	)
	defer span.End()

	var (
		resp     DisplayResponse
		applyErr error
	)
	start := time.Now()
	err := h.store.Do(id, func(c *calculator.Calculator) error {
		applyErr = c.Apply(ev)
		resp = displayResponse(id, c)
		return nil
	})
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return DisplayResponse{}, err
	}

	attrs := metric.WithAttributes(attribute.String("event", kind))
	eventCounter.Add(ctx, 1, attrs)
	eventHistogram.Record(ctx, elapsed, attrs)

	if errors.Is(applyErr, calculator.ErrDivideByZero) {
		resp.Alert = calculator.DivideByZeroAlert
		errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "divide")))
		span.AddEvent("calculator.divide_by_zero")
		logger.Warn("division by zero, calculator reset",
			zap.String("session_id", id),
			zap.String("event", ev.String()),
		)
	} else {
		recordResult(ctx, ev, resp.Current)
	}

	span.SetAttributes(
		attribute.String("calculator.display.current", resp.Current),
		attribute.String("calculator.display.previous", resp.Previous),
	)
	span.SetStatus(codes.Ok, "")

	logger.Debug("calculator event applied",
		zap.String("session_id", id),
		zap.String("event", ev.String()),
		zap.String("current", resp.Current),
		zap.String("previous", resp.Previous),
		zap.Float64("duration_ms", elapsed),
	)

	return resp, nil
}

func statusFor(err error) int {
	if errors.Is(err, session.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// recordResult publishes the displayed value after transitions that can
// produce a result.
func recordResult(ctx context.Context, ev calculator.Event, current string) {
	if ev.Kind != calculator.EventEquals && ev.Kind != calculator.EventOperator {
		return
	}
	v, err := strconv.ParseFloat(current, 64)
	if err != nil {
		return
	}
	resultGauge.Record(ctx, v, metric.WithAttributes(attribute.String("event", ev.Kind.String())))
}

// ---------------------------------------------------------------------------
// Handler — stateless replay (demonstrates nested spans)
// ---------------------------------------------------------------------------

// Evaluate handles POST /calculator/evaluate — replays a key sequence on a
// fresh calculator, one child span per event, and returns the final display.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.evaluate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	events, err := calculator.ParseSequence(req.Sequence)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "invalid sequence", err, http.StatusBadRequest, w)
		return
	}
	if len(events) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "no events provided", fmt.Errorf("sequence %q is empty", req.Sequence), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("evaluate.sequence", req.Sequence),
		attribute.Int("evaluate.events_count", len(events)),
	)

	c := calculator.New()
	resp := EvaluateResponse{Sequence: req.Sequence, Events: len(events)}

	for i, ev := range events {
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.evaluate.step.%d.%s", i, ev.Kind),
			trace.WithAttributes(
				attribute.Int("evaluate.step.index", i),
				attribute.String("evaluate.step.event", ev.String()),
			),
		)

		if err := c.Apply(ev); errors.Is(err, calculator.ErrDivideByZero) {
			resp.Alert = calculator.DivideByZeroAlert
			stepSpan.RecordError(err)
			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "divide")))
			logger.Warn("division by zero during evaluate",
				zap.Int("step", i),
				zap.String("request_id", requestID),
			)
		}

		d := c.Display()
		stepSpan.SetAttributes(attribute.String("evaluate.step.current", d.Current))
		stepSpan.End()

		eventCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("event", ev.Kind.String())))
	}

	d := c.Display()
	resp.Current = d.Current
	resp.Previous = d.Previous
	recordResult(ctx, calculator.Equals, d.Current)

	span.SetAttributes(attribute.String("evaluate.result", d.Current))
	span.SetStatus(codes.Ok, "")

	logger.Info("sequence evaluated",
		zap.String("sequence", req.Sequence),
		zap.Int("events", len(events)),
		zap.String("current", d.Current),
		zap.String("previous", d.Previous),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}
