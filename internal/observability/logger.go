package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. Tests may swap it for zap.NewNop or an
// observer core.
var Logger = zap.NewNop()

// InitLogger replaces Logger with a JSON production logger on stderr. The
// same logger backs zap.L() for packages that cannot import this one.
func InitLogger() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}

	setLogger(l)
	return nil
}

func setLogger(l *zap.Logger) {
	Logger = l
	zap.ReplaceGlobals(l)
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx itself is attached as a zap.Any("context", ctx) field: the otelzap core
// uses any context.Context field as the context for Emit, which fills in the
// native TraceID/SpanID of the exported OTLP record. The plain string fields
// keep stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
