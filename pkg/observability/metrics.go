package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricRuns           = "devdays.runs.total"
	metricRunDuration    = "devdays.run.duration.seconds"
	metricCommits        = "devdays.commits.processed.total"
	metricCommitsSkipped = "devdays.commits.skipped.total"
	metricAuthors        = "devdays.authors"
	metricContribDays    = "devdays.contribution.days"

	attrStatus = "status"
	attrFormat = "format"
)

// RunStats summarizes one devdays run for metric recording.
type RunStats struct {
	Commits   int
	Skipped   int
	Authors   int
	TotalDays int
	Duration  time.Duration
	Format    string
	Err       error
}

// RunMetrics holds the OTel instruments for devdays runs.
type RunMetrics struct {
	runs           metric.Int64Counter
	duration       metric.Float64Histogram
	commits        metric.Int64Counter
	commitsSkipped metric.Int64Counter
	authors        metric.Int64Gauge
	contribDays    metric.Int64Gauge
}

// NewRunMetrics creates run instruments from the given meter.
func NewRunMetrics(mt metric.Meter) (*RunMetrics, error) {
	runs, err := mt.Int64Counter(metricRuns,
		metric.WithDescription("Total devdays runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRuns, err)
	}

	duration, err := mt.Float64Histogram(metricRunDuration,
		metric.WithDescription("Wall-clock duration of a devdays run"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRunDuration, err)
	}

	commits, err := mt.Int64Counter(metricCommits,
		metric.WithDescription("Commits aggregated into the contribution index"),
		metric.WithUnit("{commit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCommits, err)
	}

	skipped, err := mt.Int64Counter(metricCommitsSkipped,
		metric.WithDescription("Commits skipped under the lenient policy"),
		metric.WithUnit("{commit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCommitsSkipped, err)
	}

	authors, err := mt.Int64Gauge(metricAuthors,
		metric.WithDescription("Distinct authors in the last report"),
		metric.WithUnit("{author}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricAuthors, err)
	}

	days, err := mt.Int64Gauge(metricContribDays,
		metric.WithDescription("Total contribution days in the last report"),
		metric.WithUnit("{day}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricContribDays, err)
	}

	return &RunMetrics{
		runs:           runs,
		duration:       duration,
		commits:        commits,
		commitsSkipped: skipped,
		authors:        authors,
		contribDays:    days,
	}, nil
}

// RecordRun records one run. Safe to call on a nil receiver.
func (rm *RunMetrics) RecordRun(ctx context.Context, stats RunStats) {
	if rm == nil {
		return
	}

	status := "ok"
	if stats.Err != nil {
		status = "error"
	}

	runAttrs := metric.WithAttributes(
		attribute.String(attrStatus, status),
		attribute.String(attrFormat, stats.Format),
	)

	rm.runs.Add(ctx, 1, runAttrs)
	rm.duration.Record(ctx, stats.Duration.Seconds(), runAttrs)

	if stats.Err != nil {
		return
	}

	rm.commits.Add(ctx, int64(stats.Commits))
	rm.commitsSkipped.Add(ctx, int64(stats.Skipped))
	rm.authors.Record(ctx, int64(stats.Authors))
	rm.contribDays.Record(ctx, int64(stats.TotalDays))
}
