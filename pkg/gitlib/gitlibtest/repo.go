// Package gitlibtest builds throwaway git repositories with fully controlled
// authors and timestamps for tests.
package gitlibtest

import (
	"testing"
	"time"

	git2go "github.com/libgit2/git2go/v34"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/devdays/pkg/gitlib"
)

// Repo is a test repository rooted in a temporary directory.
type Repo struct {
	t      *testing.T
	Path   string
	native *git2go.Repository
	tree   *git2go.Oid
}

// New initializes an empty repository. It is freed when the test ends.
func New(t *testing.T) *Repo {
	t.Helper()

	dir := t.TempDir()

	repo, err := git2go.InitRepository(dir, false)
	require.NoError(t, err)

	t.Cleanup(repo.Free)

	index, err := repo.Index()
	require.NoError(t, err)

	defer index.Free()

	treeID, err := index.WriteTree()
	require.NoError(t, err)

	return &Repo{t: t, Path: dir, native: repo, tree: treeID}
}

// Commit creates a commit on refname (e.g. "refs/heads/main") with the given
// parents. The reference is created or advanced to the new commit.
func (r *Repo) Commit(refname, author string, when time.Time, parents ...gitlib.Hash) gitlib.Hash {
	r.t.Helper()

	tree, err := r.native.LookupTree(r.tree)
	require.NoError(r.t, err)

	defer tree.Free()

	sig := &git2go.Signature{Name: author, Email: "dev@example.com", When: when}

	parentCommits := make([]*git2go.Commit, 0, len(parents))

	for _, p := range parents {
		c, lookupErr := r.native.LookupCommit(p.ToOid())
		require.NoError(r.t, lookupErr)

		parentCommits = append(parentCommits, c)
	}

	oid, err := r.native.CreateCommit(refname, sig, sig, "commit by "+author, tree, parentCommits...)
	require.NoError(r.t, err)

	for _, c := range parentCommits {
		c.Free()
	}

	return gitlib.HashFromOid(oid)
}

// Ref points refname directly at target, creating it when missing.
func (r *Repo) Ref(refname string, target gitlib.Hash) {
	r.t.Helper()

	ref, err := r.native.References.Create(refname, target.ToOid(), true, "test ref")
	require.NoError(r.t, err)

	ref.Free()
}

// SymbolicRef points refname at another reference.
func (r *Repo) SymbolicRef(refname, target string) {
	r.t.Helper()

	ref, err := r.native.References.CreateSymbolic(refname, target, true, "test symref")
	require.NoError(r.t, err)

	ref.Free()
}
