// Package datex implements the journal's calendar-day arithmetic. Entries
// are keyed by YYYY-MM-DD strings in the process's local timezone, so every
// helper here works on local dates, never UTC.
package datex

import (
	"fmt"
	"time"

	"github.com/Skyism/gratefulnessjar/internal/common"
)

// Layout is the canonical date-string format.
const Layout = "2006-01-02"

// nowFn is a test seam for the current time. In tests, replace it with a
// stub to pin "today".
var nowFn = time.Now

// Today returns today's date string in the local timezone.
func Today() string {
	return nowFn().Format(Layout)
}

// Parse converts a YYYY-MM-DD string into a local-midnight time.Time.
// It fails with common.ErrInvalidDate when the string is malformed or not a
// real calendar date (e.g. 2024-02-30).
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, s)
	}
	// time.Parse normalizes some malformed inputs; require an exact round-trip.
	if t.Format(Layout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, s)
	}
	return t, nil
}

// Format renders a date string using the given time layout. On parse
// failure the original string is returned unchanged, so display code never
// has to handle a formatting error.
func Format(s string, layout string) string {
	t, err := Parse(s)
	if err != nil {
		return s
	}
	return t.Format(layout)
}

// IsFuture reports whether the date lies strictly after today's local date.
// Malformed dates are never considered future.
func IsFuture(s string) bool {
	d, err := DaysBetween(Today(), s)
	if err != nil {
		return false
	}
	return d > 0
}

// DaysBetween returns the signed whole-day difference b − a.
func DaysBetween(a, b string) (int, error) {
	ta, err := Parse(a)
	if err != nil {
		return 0, err
	}
	tb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	// Re-anchor both days in UTC so DST transitions cannot skew the count.
	ua := time.Date(ta.Year(), ta.Month(), ta.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(tb.Year(), tb.Month(), tb.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24), nil
}

// RelativeLabel renders a date relative to today: "Today", "Yesterday",
// "Tomorrow", then day/week/month/year buckets ("3 days ago", "1 week ago",
// "In 2 months", ...). Malformed dates are returned unchanged.
func RelativeLabel(s string) string {
	ago, err := DaysBetween(s, Today())
	if err != nil {
		return s
	}

	switch ago {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	case -1:
		return "Tomorrow"
	}

	if ago > 0 {
		n, unit := bucket(ago)
		return fmt.Sprintf("%d %s ago", n, plural(unit, n))
	}
	n, unit := bucket(-ago)
	return fmt.Sprintf("In %d %s", n, plural(unit, n))
}

// bucket maps an absolute day distance onto the display unit:
// <7 days, <30 weeks, <365 months, else years.
func bucket(days int) (int, string) {
	switch {
	case days < 7:
		return days, "day"
	case days < 30:
		return days / 7, "week"
	case days < 365:
		return days / 30, "month"
	default:
		return days / 365, "year"
	}
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// DaysInMonth returns the number of days in the given month (1–12).
func DaysInMonth(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// DatesInMonth returns every date string of the month in ascending order.
func DatesInMonth(year, month int) []string {
	n := DaysInMonth(year, month)
	out := make([]string, 0, n)
	for day := 1; day <= n; day++ {
		out = append(out, time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local).Format(Layout))
	}
	return out
}
