// Package observability sets up the logger, tracer and meter of a devdays
// run. Spans and metrics leave the process only when an OTLP endpoint is
// configured.
package observability

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

const (
	serviceName         = "devdays"
	instrumentationName = "github.com/Sumatoshi-tech/devdays"

	flushTimeout = 5 * time.Second
)

// Config selects log output and OTLP export for a run.
type Config struct {
	// Version is reported as service.version and on every log line.
	Version string
	// Environment becomes deployment.environment when set.
	Environment string

	// Endpoint is the OTLP gRPC collector address. Empty disables export.
	Endpoint string
	Headers  map[string]string
	Insecure bool

	LogLevel slog.Level
	LogJSON  bool
	// LogOutput defaults to os.Stderr.
	LogOutput io.Writer
}

// ParseHeaders reads "key=value,key=value" into a header map. Pairs without
// '=' are ignored; nil means no usable pair.
func ParseHeaders(raw string) map[string]string {
	var headers map[string]string

	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)

		if !ok || key == "" {
			continue
		}

		if headers == nil {
			headers = make(map[string]string)
		}

		headers[key] = strings.TrimSpace(value)
	}

	return headers
}
