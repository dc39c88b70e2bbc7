package main

import (
	"context"
	"fmt"

	"github.com/icco/camfour"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// setupMetrics sends otel metrics to the default prometheus registry, which
// promhttp serves on /metrics.
func setupMetrics() (*sdkmetric.MeterProvider, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	return provider, nil
}

// matchMetrics counts what happens on the table.
type matchMetrics struct {
	moves    metric.Int64Counter
	rejected metric.Int64Counter
	outcomes metric.Int64Counter
}

func newMatchMetrics() (*matchMetrics, error) {
	meter := otel.Meter(camfour.Service)

	moves, err := meter.Int64Counter("camfour.moves",
		metric.WithDescription("Pieces placed, by occupant"))
	if err != nil {
		return nil, err
	}

	rejected, err := meter.Int64Counter("camfour.moves.rejected",
		metric.WithDescription("Human moves the board refused"))
	if err != nil {
		return nil, err
	}

	outcomes, err := meter.Int64Counter("camfour.outcomes",
		metric.WithDescription("Finished matches, by outcome"))
	if err != nil {
		return nil, err
	}

	return &matchMetrics{moves: moves, rejected: rejected, outcomes: outcomes}, nil
}

// observe records a match event.
func (mm *matchMetrics) observe(e camfour.Event) {
	ctx := context.Background()
	switch e.Kind {
	case camfour.EventPlaced:
		if e.Move != nil {
			mm.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("occupant", e.Move.Occupant.String())))
		}
	case camfour.EventRejected:
		mm.rejected.Add(ctx, 1)
	case camfour.EventOutcome:
		mm.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", e.Outcome.String())))
	}
}
