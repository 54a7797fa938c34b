package calcapi

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments — replaced with real ones once via InitMetrics().
var (
	eventCounter   metric.Int64Counter     = noop.Int64Counter{}
	eventHistogram metric.Float64Histogram = noop.Float64Histogram{}
	errorCounter   metric.Int64Counter     = noop.Int64Counter{}
	resultGauge    metric.Float64Gauge     = noop.Float64Gauge{}
)

// InitMetrics registers the OTel instruments for calculator events.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	eventCounter, err = meter.Int64Counter("calculator.events.total",
		metric.WithDescription("Total number of calculator input events applied"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return fmt.Errorf("creating event counter: %w", err)
	}

	eventHistogram, err = meter.Float64Histogram("calculator.event.duration",
		metric.WithDescription("Time spent applying one calculator event in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating event histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of rejected events and divide-by-zero alerts"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The most recent evaluated result"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
