// Package metrics provides OpenTelemetry instruments for the remote gateway
// calls, exported through the Prometheus registry.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Gateway holds the instruments recorded around remote CMS calls. A nil
// *Gateway is valid and records nothing, so callers that do not care about
// metrics can pass nil.
type Gateway struct {
	// requests counts remote calls by operation and outcome.
	requests metric.Int64Counter
	// duration tracks remote call latency in seconds by operation and outcome.
	duration metric.Float64Histogram
}

// NewGateway creates the gateway instruments backed by an OTel meter whose
// reader exports to the given Prometheus registerer. Pass
// prometheus.DefaultRegisterer in production; tests can pass a private
// registry.
func NewGateway(reg prometheus.Registerer) (*Gateway, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)).Meter("gateway")

	requests, err := meter.Int64Counter("crafter_requests_total",
		metric.WithDescription("Remote Crafter CMS API calls by operation and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("crafter_request_duration_seconds",
		metric.WithDescription("Remote Crafter CMS API call latency in seconds."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Gateway{requests: requests, duration: duration}, nil
}

// Observe records one finished remote call.
func (g *Gateway) Observe(ctx context.Context, operation string, success bool, elapsed time.Duration) {
	if g == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Bool("success", success),
	)
	g.requests.Add(ctx, 1, attrs)
	g.duration.Record(ctx, elapsed.Seconds(), attrs)
}
