package domain

import "time"

// Period is an inclusive date range. Both endpoints are dates, not
// instants: a booking from Jan 1 to Jan 5 occupies all five days, and a
// period with Start == End is a valid one-day booking.
type Period struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// NewPeriod normalises both endpoints to UTC midnight so that day
// arithmetic and overlap checks are independent of the wall-clock time
// the dates were parsed with.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: truncateToDay(start), End: truncateToDay(end)}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the range is well-ordered (Start <= End).
func (p Period) Valid() bool {
	return !p.Start.After(p.End)
}

// Overlaps implements the inclusive overlap test: [s1,e1] and [s2,e2]
// conflict iff s1 <= e2 && e1 >= s2. A booking ending on day D overlaps
// another starting on day D.
func (p Period) Overlaps(other Period) bool {
	return !p.Start.After(other.End) && !p.End.Before(other.Start)
}

// Days returns the inclusive day count, never less than 1. A one-day
// booking (Start == End) counts as a single billable day.
func (p Period) Days() int64 {
	days := int64(p.End.Sub(p.Start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
