package contrib

import (
	"cmp"
	"slices"
	"strings"
)

// AuthorDays is one row of a Report.
type AuthorDays struct {
	Author string
	Days   int
}

// DateRange is an inclusive span of days.
type DateRange struct {
	First Day
	Last  Day
}

// Report is the ranked result of a run.
type Report struct {
	// Authors is sorted by Days descending, then by Author ascending.
	Authors []AuthorDays
	// Total is the sum of every author's Days. A day two authors share
	// counts twice.
	Total int
	// Range is nil when no commit was processed.
	Range   *DateRange
	Commits int
	Skipped int
}

// Report ranks the authors in the index.
func (x *Index) Report() Report {
	rep := Report{
		Authors: make([]AuthorDays, 0, len(x.days)),
		Commits: x.commits,
		Skipped: x.skipped,
	}

	for author, set := range x.days {
		rep.Authors = append(rep.Authors, AuthorDays{Author: author, Days: len(set)})
		rep.Total += len(set)
	}

	slices.SortFunc(rep.Authors, compareRank)

	if r, ok := x.Range(); ok {
		rep.Range = &r
	}

	return rep
}

func compareRank(a, b AuthorDays) int {
	if c := cmp.Compare(b.Days, a.Days); c != 0 {
		return c
	}

	return strings.Compare(a.Author, b.Author)
}
