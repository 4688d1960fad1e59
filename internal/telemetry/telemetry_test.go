package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/tablewatch/internal/config"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Parallel()

	p, err := Setup(context.Background(), &config.TelemetryConfig{ServiceName: "tablewatch"}, "dev")
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.Nil(t, p.Tracer)
	assert.Nil(t, p.Meter)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestProviders_ZeroValueShutdown(t *testing.T) {
	t.Parallel()

	var p Providers
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestExporterOptions(t *testing.T) {
	t.Parallel()

	secure := &config.TelemetryConfig{OTLPEndpoint: "collector:4317", ServiceName: "tablewatch"}
	insecure := &config.TelemetryConfig{OTLPEndpoint: "collector:4317", ServiceName: "tablewatch", Insecure: true}

	assert.Len(t, traceOptions(secure), 2)
	assert.Len(t, traceOptions(insecure), 3)
	assert.Len(t, metricOptions(secure), 2)
	assert.Len(t, metricOptions(insecure), 3)
}

func TestSetup_WithEndpoint(t *testing.T) {
	// Mutates global providers.
	cfg := &config.TelemetryConfig{
		OTLPEndpoint:   "127.0.0.1:4317",
		ServiceName:    "tablewatch",
		Insecure:       true,
		SampleRatio:    1,
		MetricInterval: time.Minute,
	}

	p, err := Setup(context.Background(), cfg, "test")
	require.NoError(t, err)
	assert.True(t, p.Enabled())
	assert.NotNil(t, p.Meter)

	// Nothing listens on the endpoint; shutdown may report an export failure
	// but must return once the context expires.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = p.Shutdown(ctx)
}
