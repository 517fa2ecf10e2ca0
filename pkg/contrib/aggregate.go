package contrib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Policy decides what happens when a single commit cannot be processed.
type Policy string

const (
	// PolicyStrict aborts the run on the first failure.
	PolicyStrict Policy = "strict"
	// PolicyLenient logs a warning and skips commits that cannot be
	// resolved or carry an invalid timestamp.
	PolicyLenient Policy = "lenient"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("unknown error policy")

// ParsePolicy converts a policy name. Empty selects PolicyStrict.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyLenient:
		return PolicyLenient, nil
	default:
		return "", fmt.Errorf("%w: %q (want strict or lenient)", ErrUnknownPolicy, name)
	}
}

// Options configures Aggregate and Collect.
type Options struct {
	Policy Policy
	// IncludeRemotes is used by Collect only.
	IncludeRemotes bool
	Logger         *slog.Logger
	Tracer         trace.Tracer
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return discardLogger()
	}

	return o.Logger
}

func (o Options) tracer() trace.Tracer {
	if o.Tracer == nil {
		return noop.NewTracerProvider().Tracer("")
	}

	return o.Tracer
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Aggregate drains src into a new Index.
func Aggregate(ctx context.Context, src Source, opts Options) (*Index, error) {
	ctx, span := opts.tracer().Start(ctx, "devdays.aggregate")
	defer span.End()

	logger := opts.logger()
	idx := NewIndex()

	err := src.ForEach(ctx, func(rec CommitRecord, recErr error) error {
		if recErr == nil {
			recErr = idx.Observe(rec)
		}

		if recErr == nil {
			return nil
		}

		if opts.Policy == PolicyLenient && Skippable(recErr) {
			idx.skipped++

			logger.WarnContext(ctx, "skipping commit", "commit", rec.ID.String(), "error", recErr)

			return nil
		}

		return recErr
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregation failed")

		return nil, err
	}

	span.SetAttributes(
		attribute.Int("devdays.commits", idx.Commits()),
		attribute.Int("devdays.skipped", idx.Skipped()),
		attribute.Int("devdays.authors", len(idx.days)),
	)

	logger.DebugContext(ctx, "aggregation finished",
		"commits", idx.Commits(), "skipped", idx.Skipped(), "authors", len(idx.days))

	return idx, nil
}
