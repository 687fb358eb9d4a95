// Package api holds the otel instruments shared by the HTTP middleware and
// the catalog service.
package api

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const namespace = "enumkit_api"

// Metrics defines the recording operations the API layer needs.
type Metrics interface {
	IncRequestsTotal(ctx context.Context, method, path string, status int)
	ObserveRequestDuration(ctx context.Context, method, path string, duration time.Duration)
	IncPanics(ctx context.Context)

	// Catalog service metrics.
	IncLookup(ctx context.Context, set string)
	IncParseMiss(ctx context.Context, set string)
	IncExportedSets(ctx context.Context, count int)
}

type apiMetrics struct {
	requestsTotal   metric.Int64Counter
	requestDuration metric.Float64Histogram
	panicsTotal     metric.Int64Counter

	lookupsTotal   metric.Int64Counter
	parseMissTotal metric.Int64Counter
	exportedSets   metric.Int64Counter
}

// NewAPIMetrics builds the API instruments off the given meter provider.
func NewAPIMetrics(mp metric.MeterProvider) (*apiMetrics, error) {
	meter := mp.Meter(namespace, metric.WithInstrumentationVersion("v0.1.0"))

	m := new(apiMetrics)
	var err error

	if m.requestsTotal, err = meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	); err != nil {
		return nil, err
	}

	if m.requestDuration, err = meter.Float64Histogram(
		"request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
	); err != nil {
		return nil, err
	}

	if m.panicsTotal, err = meter.Int64Counter(
		"panics_total",
		metric.WithDescription("Total number of recovered handler panics"),
	); err != nil {
		return nil, err
	}

	if m.lookupsTotal, err = meter.Int64Counter(
		"set_lookups_total",
		metric.WithDescription("Total number of set lookups served"),
	); err != nil {
		return nil, err
	}

	if m.parseMissTotal, err = meter.Int64Counter(
		"parse_misses_total",
		metric.WithDescription("Total number of parse requests that matched no member"),
	); err != nil {
		return nil, err
	}

	if m.exportedSets, err = meter.Int64Counter(
		"exported_sets_total",
		metric.WithDescription("Total number of sets written to blob storage"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *apiMetrics) IncRequestsTotal(ctx context.Context, method, path string, status int) {
	m.requestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.Int("status", status),
	))
}

func (m *apiMetrics) ObserveRequestDuration(ctx context.Context, method, path string, duration time.Duration) {
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	))
}

func (m *apiMetrics) IncPanics(ctx context.Context) {
	m.panicsTotal.Add(ctx, 1)
}

func (m *apiMetrics) IncLookup(ctx context.Context, set string) {
	m.lookupsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("set", set)))
}

func (m *apiMetrics) IncParseMiss(ctx context.Context, set string) {
	m.parseMissTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("set", set)))
}

func (m *apiMetrics) IncExportedSets(ctx context.Context, count int) {
	m.exportedSets.Add(ctx, int64(count))
}
