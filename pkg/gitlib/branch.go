package gitlib

import (
	"errors"
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// BranchKind selects which branch namespaces Branches lists.
type BranchKind int

const (
	// BranchLocal lists refs/heads only.
	BranchLocal BranchKind = iota
	// BranchAll lists refs/heads and refs/remotes.
	BranchAll
)

// Branch is a branch name and the commit it currently points at.
type Branch struct {
	Name   string
	Target Hash
	Remote bool
}

func (k BranchKind) native() git2go.BranchType {
	if k == BranchAll {
		return git2go.BranchAll
	}

	return git2go.BranchLocal
}

// Branches lists the branches of the given kind. Branches whose reference
// is symbolic (no direct target) are left out.
func (r *Repository) Branches(kind BranchKind) ([]Branch, error) {
	iter, err := r.repo.NewBranchIterator(kind.native())
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer iter.Free()

	var branches []Branch

	for {
		branch, branchType, nextErr := iter.Next()
		if nextErr != nil {
			if isIterOver(nextErr) {
				return branches, nil
			}

			return nil, fmt.Errorf("list branches: %w", nextErr)
		}

		target := branch.Target()
		if target == nil {
			branch.Free()

			continue
		}

		name, nameErr := branch.Name()
		if nameErr != nil {
			branch.Free()

			return nil, fmt.Errorf("branch name: %w", nameErr)
		}

		branches = append(branches, Branch{
			Name:   name,
			Target: HashFromOid(target),
			Remote: branchType == git2go.BranchRemote,
		})

		branch.Free()
	}
}

func isIterOver(err error) bool {
	var gitErr *git2go.GitError

	return errors.As(err, &gitErr) && gitErr.Code == git2go.ErrorCodeIterOver
}
