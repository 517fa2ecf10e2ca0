// Package gitlib provides the narrow set of git operations devdays needs,
// backed by the libgit2 C library through git2go.
package gitlib

import (
	"encoding/hex"

	git2go "github.com/libgit2/git2go/v34"
)

const (
	// HashSize is the size of a SHA-1 hash in bytes.
	HashSize = 20
	// shortHashSize is the number of hex digits used by Short.
	shortHashSize = 7
)

// Hash represents a git object hash (SHA-1).
type Hash [HashSize]byte

// NewHash creates a Hash from a hex string. Invalid or short input yields
// a partially filled hash; it is meant for tests and fixtures.
func NewHash(hexStr string) Hash {
	var h Hash

	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return h
	}

	copy(h[:], raw)

	return h
}

// HashFromOid converts a libgit2 Oid to Hash.
func HashFromOid(oid *git2go.Oid) Hash {
	var h Hash
	copy(h[:], oid[:])

	return h
}

// String returns the hex representation of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the abbreviated hex form used in log messages.
func (h Hash) Short() string {
	return h.String()[:shortHashSize]
}

// ToOid converts Hash back to libgit2 Oid.
func (h Hash) ToOid() *git2go.Oid {
	oid := new(git2go.Oid)
	copy(oid[:], h[:])

	return oid
}
