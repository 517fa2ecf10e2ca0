package gitlib

import (
	"fmt"
	"io"

	git2go "github.com/libgit2/git2go/v34"
)

// SortMode controls the order in which RevWalk yields commits.
type SortMode uint

// Sort modes mirror libgit2's and may be combined with |.
const (
	SortNone    = SortMode(git2go.SortNone)
	SortTime    = SortMode(git2go.SortTime)
	SortReverse = SortMode(git2go.SortReverse)
)

// RevWalk wraps a libgit2 revision walker. libgit2 marks every commit it
// emits as seen, so a commit reachable from several pushed tips is
// returned once.
type RevWalk struct {
	walk *git2go.RevWalk
}

// Push adds a commit to start walking from.
func (w *RevWalk) Push(hash Hash) error {
	err := w.walk.Push(hash.ToOid())
	if err != nil {
		return fmt.Errorf("push %s to revwalk: %w", hash.Short(), err)
	}

	return nil
}

// Sorting sets the sorting mode for the walker.
func (w *RevWalk) Sorting(mode SortMode) {
	w.walk.Sorting(git2go.SortType(mode))
}

// Next returns the next commit hash in the walk, or io.EOF once the walk
// is exhausted.
func (w *RevWalk) Next() (Hash, error) {
	oid := new(git2go.Oid)

	err := w.walk.Next(oid)
	if err != nil {
		if isIterOver(err) {
			return Hash{}, io.EOF
		}

		return Hash{}, fmt.Errorf("revwalk next: %w", err)
	}

	return HashFromOid(oid), nil
}

// Free releases the walker resources.
func (w *RevWalk) Free() {
	if w.walk != nil {
		w.walk.Free()
		w.walk = nil
	}
}
