package observability

import "go.opentelemetry.io/otel/sdk/resource"

// RunResource exposes runResource for tests.
func RunResource(cfg Config) *resource.Resource {
	return runResource(cfg)
}
