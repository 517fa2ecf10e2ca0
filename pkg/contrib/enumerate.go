package contrib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Sumatoshi-tech/devdays/pkg/gitlib"
)

// EnumerateOptions configures which commits an Enumerator visits.
type EnumerateOptions struct {
	// IncludeRemotes adds remote-tracking branches to the starting tips.
	IncludeRemotes bool
	// Sort is the revision walk order. It has no effect on the counts.
	Sort gitlib.SortMode
}

// DefaultSort walks oldest commits first.
const DefaultSort = gitlib.SortTime | gitlib.SortReverse

// Enumerator is a Source over every commit reachable from the branch tips
// of a repository. Each commit is yielded once, however many branches
// reach it.
type Enumerator struct {
	repo   *gitlib.Repository
	opts   EnumerateOptions
	logger *slog.Logger
}

// NewEnumerator creates an Enumerator over repo. A nil logger discards output.
func NewEnumerator(repo *gitlib.Repository, opts EnumerateOptions, logger *slog.Logger) *Enumerator {
	if logger == nil {
		logger = discardLogger()
	}

	return &Enumerator{repo: repo, opts: opts, logger: logger}
}

// ForEach implements Source.
func (e *Enumerator) ForEach(ctx context.Context, fn func(CommitRecord, error) error) error {
	kind := gitlib.BranchLocal
	if e.opts.IncludeRemotes {
		kind = gitlib.BranchAll
	}

	branches, err := e.repo.Branches(kind)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBranchEnumeration, err)
	}

	remotes := 0

	for _, branch := range branches {
		if branch.Remote {
			remotes++
		}
	}

	e.logger.DebugContext(ctx, "branches listed", "count", len(branches), "remote", remotes)

	if len(branches) == 0 {
		return nil
	}

	walk, err := e.repo.Walk()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTraversalSetup, err)
	}
	defer walk.Free()

	walk.Sorting(e.opts.Sort)

	for _, branch := range branches {
		pushErr := walk.Push(branch.Target)
		if pushErr != nil {
			return fmt.Errorf("%w: branch %s: %w", ErrTraversalSetup, branch.Name, pushErr)
		}
	}

	seen := make(map[gitlib.Hash]struct{})

	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		hash, nextErr := walk.Next()
		if errors.Is(nextErr, io.EOF) {
			break
		}

		// The walk cannot resume after a failed step, so this ends the run
		// under every policy.
		if nextErr != nil {
			return fmt.Errorf("%w: %w", ErrCommitResolution, nextErr)
		}

		if _, dup := seen[hash]; dup {
			continue
		}

		seen[hash] = struct{}{}

		rec, resolveErr := e.resolve(hash)

		cbErr := fn(rec, resolveErr)
		if cbErr != nil {
			return cbErr
		}
	}

	e.logger.DebugContext(ctx, "revision walk finished", "commits", len(seen))

	return nil
}

func (e *Enumerator) resolve(hash gitlib.Hash) (CommitRecord, error) {
	commit, err := e.repo.LookupCommit(hash)
	if err != nil {
		return CommitRecord{ID: hash}, fmt.Errorf("%w: %w", ErrCommitResolution, err)
	}
	defer commit.Free()

	author := commit.Author()

	return CommitRecord{
		ID:         hash,
		AuthorName: author.Name,
		AuthorTime: author.When.Unix(),
	}, nil
}
