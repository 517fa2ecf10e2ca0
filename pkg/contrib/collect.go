package contrib

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/devdays/pkg/gitlib"
)

// Collect opens the repository at path, walks every branch and returns the
// ranked report.
func Collect(ctx context.Context, path string, opts Options) (Report, error) {
	ctx, span := opts.tracer().Start(ctx, "devdays.collect",
		trace.WithAttributes(attribute.String("repo.path", path)))
	defer span.End()

	opts.Logger = opts.logger().With("repo", path)

	repo, err := gitlib.OpenRepository(path)
	if err != nil {
		err = fmt.Errorf("%w %s: %w", ErrRepositoryOpen, path, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")

		return Report{}, err
	}
	defer repo.Free()

	enum := NewEnumerator(repo, EnumerateOptions{
		IncludeRemotes: opts.IncludeRemotes,
		Sort:           DefaultSort,
	}, opts.Logger)

	idx, err := Aggregate(ctx, enum, opts)
	if err != nil {
		span.SetStatus(codes.Error, "collect failed")

		return Report{}, err
	}

	return idx.Report(), nil
}
