package contrib

import (
	"cmp"
	"fmt"
	"time"
)

// Unix seconds of 0000-01-01T00:00:00Z and 9999-12-31T23:59:59Z. A year
// outside 0000..9999 has no YYYY-MM-DD spelling (it would need a sign or a
// fifth digit), so DayOf rejects it with ErrTimestamp.
const (
	minUnixSeconds int64 = -62167219200
	maxUnixSeconds int64 = 253402300799
)

// Day is a UTC calendar date.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf truncates a Unix timestamp to its UTC calendar day. The author's
// own timezone offset plays no part.
func DayOf(unixSeconds int64) (Day, error) {
	if unixSeconds < minUnixSeconds || unixSeconds > maxUnixSeconds {
		return Day{}, fmt.Errorf("%w: %d seconds is outside 0000-01-01..9999-12-31", ErrTimestamp, unixSeconds)
	}

	y, m, d := time.Unix(unixSeconds, 0).UTC().Date()

	return Day{Year: y, Month: m, Day: d}, nil
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after o.
func (d Day) Compare(o Day) int {
	switch {
	case d.Year != o.Year:
		return cmp.Compare(d.Year, o.Year)
	case d.Month != o.Month:
		return cmp.Compare(d.Month, o.Month)
	default:
		return cmp.Compare(d.Day, o.Day)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
