package contrib

import "errors"

// Sentinel errors classifying every way a report run can fail. Each
// failure wraps exactly one of them, so callers can use errors.Is.
var (
	// ErrRepositoryOpen means the path is missing, not a repository or unreadable.
	ErrRepositoryOpen = errors.New("cannot open repository")
	// ErrTraversalSetup means the revision walk could not be created or seeded.
	ErrTraversalSetup = errors.New("cannot set up revision walk")
	// ErrBranchEnumeration means the branch list could not be read.
	ErrBranchEnumeration = errors.New("cannot list branches")
	// ErrCommitResolution means a commit queued by the walk could not be loaded.
	ErrCommitResolution = errors.New("cannot resolve commit")
	// ErrTimestamp means an author time does not map to a YYYY-MM-DD date.
	ErrTimestamp = errors.New("invalid commit timestamp")
)

// Skippable reports whether err may be downgraded to a warning under the
// lenient policy.
func Skippable(err error) bool {
	return errors.Is(err, ErrCommitResolution) || errors.Is(err, ErrTimestamp)
}
