package contrib

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// UnknownAuthor is credited with commits that carry no usable author name.
const UnknownAuthor = "Unknown"

// Index maps each author to the set of days they committed on, and tracks
// the earliest and latest day seen across all authors.
type Index struct {
	days     map[string]map[Day]struct{}
	first    Day
	last     Day
	hasRange bool
	commits  int
	skipped  int
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{days: make(map[string]map[Day]struct{})}
}

// Add records that author committed on day. Adding the same pair again
// changes nothing.
func (x *Index) Add(author string, day Day) {
	set, ok := x.days[author]
	if !ok {
		set = make(map[Day]struct{})
		x.days[author] = set
	}

	set[day] = struct{}{}

	switch {
	case !x.hasRange:
		x.first, x.last, x.hasRange = day, day, true
	case day.Compare(x.first) < 0:
		x.first = day
	case day.Compare(x.last) > 0:
		x.last = day
	}
}

// Observe folds one commit into the index.
func (x *Index) Observe(rec CommitRecord) error {
	day, err := DayOf(rec.AuthorTime)
	if err != nil {
		return fmt.Errorf("commit %s: %w", rec.ID.Short(), err)
	}

	x.Add(AuthorName(rec.AuthorName), day)
	x.commits++

	return nil
}

// AuthorName returns name, or UnknownAuthor when name is empty or not
// valid UTF-8. Any other name is kept verbatim, whitespace included.
func AuthorName(name string) string {
	if name == "" || !utf8.ValidString(name) {
		return UnknownAuthor
	}

	return name
}

// Days returns how many distinct days author committed on.
func (x *Index) Days(author string) int {
	return len(x.days[author])
}

// Authors returns every author in the index, sorted by name.
func (x *Index) Authors() []string {
	names := make([]string, 0, len(x.days))
	for name := range x.days {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Range returns the first and last day seen. ok is false when nothing was
// added.
func (x *Index) Range() (DateRange, bool) {
	return DateRange{First: x.first, Last: x.last}, x.hasRange
}

// Commits returns the number of commits folded in by Observe.
func (x *Index) Commits() int {
	return x.commits
}

// Skipped returns the number of commits dropped under the lenient policy.
func (x *Index) Skipped() int {
	return x.skipped
}
