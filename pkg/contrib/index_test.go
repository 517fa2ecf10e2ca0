package contrib_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
	"github.com/Sumatoshi-tech/devdays/pkg/gitlib"
)

func at(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Unix()
}

func record(id, author string, unix int64) contrib.CommitRecord {
	return contrib.CommitRecord{ID: gitlib.NewHash(id), AuthorName: author, AuthorTime: unix}
}

func TestIndexSameDayCountsOnce(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()

	require.NoError(t, idx.Observe(record("01", "Alice", at(2024, time.May, 1, 9))))
	require.NoError(t, idx.Observe(record("02", "Alice", at(2024, time.May, 1, 18))))

	assert.Equal(t, 1, idx.Days("Alice"))
	assert.Equal(t, 2, idx.Commits())
}

func TestIndexDifferentDaysCountTwice(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()

	require.NoError(t, idx.Observe(record("01", "Alice", at(2024, time.May, 1, 23))))
	require.NoError(t, idx.Observe(record("02", "Alice", at(2024, time.May, 2, 0))))

	assert.Equal(t, 2, idx.Days("Alice"))
}

func TestIndexObserveIsIdempotent(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()
	rec := record("01", "Alice", at(2024, time.May, 1, 9))

	require.NoError(t, idx.Observe(rec))
	before := idx.Report()

	require.NoError(t, idx.Observe(rec))
	after := idx.Report()

	assert.Equal(t, before.Authors, after.Authors)
	assert.Equal(t, before.Total, after.Total)
	assert.Equal(t, before.Range, after.Range)
}

func TestIndexUnknownAuthor(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()

	require.NoError(t, idx.Observe(record("01", "", at(2024, time.May, 1, 9))))
	require.NoError(t, idx.Observe(record("03", "\xff\xfe", at(2024, time.May, 3, 9))))

	assert.Equal(t, []string{contrib.UnknownAuthor}, idx.Authors())
	assert.Equal(t, 2, idx.Days(contrib.UnknownAuthor))
}

func TestIndexKeepsWhitespaceAuthor(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()

	require.NoError(t, idx.Observe(record("01", "   ", at(2024, time.May, 1, 9))))
	require.NoError(t, idx.Observe(record("02", " Alice", at(2024, time.May, 2, 9))))

	assert.Equal(t, []string{"   ", " Alice"}, idx.Authors())
	assert.Equal(t, "   ", contrib.AuthorName("   "))
	assert.Equal(t, contrib.UnknownAuthor, contrib.AuthorName(""))
}

func TestIndexObserveInvalidTimestamp(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()

	err := idx.Observe(record("abcdef01", "Alice", 1<<62))
	require.ErrorIs(t, err, contrib.ErrTimestamp)
	assert.Contains(t, err.Error(), "commit abcdef0")
	assert.Empty(t, idx.Authors())
	assert.Zero(t, idx.Commits())
}

func TestIndexRangeEmpty(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()

	_, ok := idx.Range()
	assert.False(t, ok)
	assert.Nil(t, idx.Report().Range)
}

func TestIndexRangeBoundsEveryDay(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()
	days := []int64{
		at(2022, time.June, 10, 12),
		at(2021, time.January, 3, 1),
		at(2023, time.March, 8, 22),
		at(2022, time.February, 1, 5),
	}

	for i, unix := range days {
		require.NoError(t, idx.Observe(record("0"+string(rune('1'+i)), "Dev", unix)))
	}

	r, ok := idx.Range()
	require.True(t, ok)
	assert.Equal(t, "2021-01-03", r.First.String())
	assert.Equal(t, "2023-03-08", r.Last.String())

	for _, unix := range days {
		day, err := contrib.DayOf(unix)
		require.NoError(t, err)
		assert.LessOrEqual(t, r.First.Compare(day), 0)
		assert.GreaterOrEqual(t, r.Last.Compare(day), 0)
	}
}

func TestReportRanking(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()

	for _, rec := range []contrib.CommitRecord{
		record("01", "Carol", at(2024, time.January, 1, 10)),
		record("02", "Bob", at(2024, time.January, 1, 10)),
		record("03", "Bob", at(2024, time.January, 2, 10)),
		record("04", "Alice", at(2024, time.January, 3, 10)),
		record("05", "Alice", at(2024, time.January, 4, 10)),
		record("06", "Alice", at(2024, time.January, 5, 10)),
		record("07", "Dave", at(2024, time.January, 5, 10)),
		record("08", "Dave", at(2024, time.January, 6, 10)),
	} {
		require.NoError(t, idx.Observe(rec))
	}

	rep := idx.Report()

	assert.Equal(t, []contrib.AuthorDays{
		{Author: "Alice", Days: 3},
		{Author: "Bob", Days: 2},
		{Author: "Dave", Days: 2},
		{Author: "Carol", Days: 1},
	}, rep.Authors)
	assert.Equal(t, 8, rep.Total)
	assert.Equal(t, 8, rep.Commits)
	require.NotNil(t, rep.Range)
	assert.Equal(t, "2024-01-01", rep.Range.First.String())
	assert.Equal(t, "2024-01-06", rep.Range.Last.String())
}

func TestReportTotalIsSumOfCounts(t *testing.T) {
	t.Parallel()

	idx := contrib.NewIndex()

	// Alice and Bob share a day; it counts once for each of them.
	for i, a := range []string{"Alice", "Bob", "Alice", "Carol", "Bob", "Alice"} {
		idx.Add(a, contrib.Day{Year: 2024, Month: time.April, Day: 1 + i%3})
	}

	rep := idx.Report()

	sum := 0
	for _, row := range rep.Authors {
		sum += row.Days
	}

	assert.Equal(t, sum, rep.Total)

	for i := 1; i < len(rep.Authors); i++ {
		assert.GreaterOrEqual(t, rep.Authors[i-1].Days, rep.Authors[i].Days)
	}
}

func TestReportIsStable(t *testing.T) {
	t.Parallel()

	build := func() contrib.Report {
		idx := contrib.NewIndex()
		for _, a := range []string{"zed", "amy", "Bea", "kim", "amy"} {
			idx.Add(a, contrib.Day{Year: 2024, Month: time.April, Day: 1})
		}

		return idx.Report()
	}

	first := build()

	for range 10 {
		assert.Equal(t, first, build())
	}

	assert.Equal(t, "Bea", first.Authors[0].Author)
}
