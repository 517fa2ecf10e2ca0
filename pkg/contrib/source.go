// Package contrib counts, per author, the distinct UTC calendar days with at
// least one commit across every branch of a repository.
package contrib

import (
	"context"

	"github.com/Sumatoshi-tech/devdays/pkg/gitlib"
)

// CommitRecord is the part of a commit the aggregator reads.
type CommitRecord struct {
	ID gitlib.Hash
	// AuthorName may be empty when the commit carries no usable name.
	AuthorName string
	// AuthorTime is whole seconds since the Unix epoch.
	AuthorTime int64
}

// Source yields commit records in any order. A commit that could not be
// loaded is passed to fn with its error and only ID set; fn decides whether
// that ends the walk. A non-nil return from fn stops iteration and is
// returned from ForEach.
type Source interface {
	ForEach(ctx context.Context, fn func(CommitRecord, error) error) error
}

// Records is a Source over a fixed slice.
type Records []CommitRecord

// ForEach implements Source.
func (r Records) ForEach(ctx context.Context, fn func(CommitRecord, error) error) error {
	for _, rec := range r {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := fn(rec, nil); err != nil {
			return err
		}
	}

	return nil
}
