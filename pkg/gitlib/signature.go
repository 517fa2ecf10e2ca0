package gitlib

import "time"

// Signature is the part of a git author signature devdays reads.
type Signature struct {
	Name string
	When time.Time
}
