package metrics_test

import (
	"context"
	"gateway/pkg/metrics"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewGateway_registersInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()

	g, err := metrics.NewGateway(reg)
	require.NoError(t, err)
	require.NotNil(t, g)

	g.Observe(context.Background(), "signin", true, 25*time.Millisecond)
	g.Observe(context.Background(), "signin", false, 5*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["crafter_requests_total"], "requests counter not exported: %v", names)
	require.True(t, names["crafter_request_duration_seconds"], "duration histogram not exported: %v", names)
}

func TestGateway_nilObserveIsNoop(t *testing.T) {
	var g *metrics.Gateway

	require.NotPanics(t, func() {
		g.Observe(context.Background(), "signup", true, time.Millisecond)
	})
}
