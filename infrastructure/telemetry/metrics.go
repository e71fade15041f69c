// Package telemetry provides OpenTelemetry metrics for the connector.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsProvider provides access to metrics instruments.
type MetricsProvider struct {
	meter metric.Meter

	toolExecutions metric.Int64Counter
	graphRequests  metric.Int64Counter
	errors         metric.Int64Counter

	toolDuration  metric.Float64Histogram
	graphDuration metric.Float64Histogram

	initOnce sync.Once
	initErr  error
}

// MetricsConfig configures the metrics provider.
type MetricsConfig struct {
	// MeterName is the name of the meter.
	MeterName string
	// MeterVersion is the version of the meter.
	MeterVersion string
}

// DefaultMetricsConfig returns a default metrics configuration.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		MeterName:    "github.com/felixgeelhaar/sharepoint-go",
		MeterVersion: "1.0.0",
	}
}

// NewMetricsProvider creates a new metrics provider.
func NewMetricsProvider(config MetricsConfig) *MetricsProvider {
	if config.MeterName == "" {
		config = DefaultMetricsConfig()
	}

	return &MetricsProvider{
		meter: otel.Meter(config.MeterName, metric.WithInstrumentationVersion(config.MeterVersion)),
	}
}

// init lazily creates the instruments.
func (m *MetricsProvider) init() error {
	m.initOnce.Do(func() {
		m.toolExecutions, m.initErr = m.meter.Int64Counter(
			"sharepoint.tool.executions",
			metric.WithDescription("Number of tool executions"))
		if m.initErr != nil {
			return
		}

		m.graphRequests, m.initErr = m.meter.Int64Counter(
			"sharepoint.graph.requests",
			metric.WithDescription("Number of Graph API requests"))
		if m.initErr != nil {
			return
		}

		m.errors, m.initErr = m.meter.Int64Counter(
			"sharepoint.errors",
			metric.WithDescription("Number of failed operations"))
		if m.initErr != nil {
			return
		}

		m.toolDuration, m.initErr = m.meter.Float64Histogram(
			"sharepoint.tool.duration",
			metric.WithDescription("Tool execution duration in milliseconds"),
			metric.WithUnit("ms"))
		if m.initErr != nil {
			return
		}

		m.graphDuration, m.initErr = m.meter.Float64Histogram(
			"sharepoint.graph.duration",
			metric.WithDescription("Graph request duration in milliseconds"),
			metric.WithUnit("ms"))
	})
	return m.initErr
}

// RecordToolExecution records a tool execution with its outcome.
func (m *MetricsProvider) RecordToolExecution(ctx context.Context, name string, d time.Duration, err error) {
	if m == nil || m.init() != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("tool", name),
		attribute.Bool("error", err != nil),
	)
	m.toolExecutions.Add(ctx, 1, attrs)
	m.toolDuration.Record(ctx, float64(d.Milliseconds()), attrs)
	if err != nil {
		m.errors.Add(ctx, 1, attrs)
	}
}

// RecordGraphRequest records a Graph API round trip.
func (m *MetricsProvider) RecordGraphRequest(ctx context.Context, method string, status int, d time.Duration) {
	if m == nil || m.init() != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.Int("status", status),
	)
	m.graphRequests.Add(ctx, 1, attrs)
	m.graphDuration.Record(ctx, float64(d.Milliseconds()), attrs)
}
