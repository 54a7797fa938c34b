package main

import (
	"context"

	"go-chi-calculator/internal/calcapi"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
)

type shutdownFunc func(context.Context) error

// initTelemetry initialises the OTel providers enabled in cfg and the
// calculator's metric instruments. Add new domain InitMetrics calls here as
// the project grows. The returned shutdown funcs run in reverse order.
func initTelemetry(ctx context.Context, cfg config.Config) ([]shutdownFunc, error) {
	var shutdowns []shutdownFunc

	if cfg.OTLPLogsEnabled {
		shutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
		if err != nil {
			return shutdowns, err
		}
		shutdowns = append(shutdowns, shutdown)
	}

	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
		if err != nil {
			return shutdowns, err
		}
		shutdowns = append(shutdowns, shutdown)
	}

	if cfg.MetricsEnabled {
		shutdown, err := observability.InitMetrics(ctx, cfg.ServiceName)
		if err != nil {
			return shutdowns, err
		}
		shutdowns = append(shutdowns, shutdown)
	}

	if err := calcapi.InitMetrics(); err != nil {
		return shutdowns, err
	}

	return shutdowns, nil
}
