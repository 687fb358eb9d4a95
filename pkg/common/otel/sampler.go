package otel

import (
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// endpointExcluder samples traces at the configured probability while never
// sampling the excluded endpoints, keeping health probes and debug routes out
// of the trace backend.
type endpointExcluder struct {
	endpoints   map[string]struct{}
	probability float64
}

func newEndpointExcluder(endpoints map[string]struct{}, probability float64) endpointExcluder {
	return endpointExcluder{
		endpoints:   endpoints,
		probability: probability,
	}
}

// ShouldSample implements the sdktrace.Sampler interface.
func (ee endpointExcluder) ShouldSample(params sdktrace.SamplingParameters) sdktrace.SamplingResult {
	for i := range params.Attributes {
		if params.Attributes[i].Key == "http.target" {
			if _, exists := ee.endpoints[params.Attributes[i].Value.AsString()]; exists {
				return sdktrace.SamplingResult{Decision: sdktrace.Drop}
			}
		}
	}

	return sdktrace.TraceIDRatioBased(ee.probability).ShouldSample(params)
}

// Description implements the sdktrace.Sampler interface.
func (ee endpointExcluder) Description() string {
	return fmt.Sprintf("endpointExcluder{probability: %.2f}", ee.probability)
}
