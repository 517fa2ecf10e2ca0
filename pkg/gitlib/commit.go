package gitlib

import (
	git2go "github.com/libgit2/git2go/v34"
)

// Commit wraps a libgit2 commit.
type Commit struct {
	commit *git2go.Commit
}

// Author returns the commit author. When keeps the author's recorded
// offset; callers wanting UTC convert it themselves.
func (c *Commit) Author() Signature {
	sig := c.commit.Author()
	if sig == nil {
		return Signature{}
	}

	return Signature{
		Name: sig.Name,
		When: sig.When,
	}
}

// Free releases the commit resources.
func (c *Commit) Free() {
	if c.commit != nil {
		c.commit.Free()
		c.commit = nil
	}
}
