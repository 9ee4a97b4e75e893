package booking

import "fmt"

// DayEnd is the last hour on the daily booking axis.
const DayEnd = 24

// MaxBookingHours is the maximum span of a single booking.
const MaxBookingHours = 12

// Interval is a half-open time range [Start, End) on an integer hour axis.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewInterval validates and builds an interval within the day.
func NewInterval(start, end int) (Interval, error) {
	if start < 0 || start >= end || end > DayEnd {
		return Interval{}, fmt.Errorf("%w: %d:%d", ErrInvalidDuration, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether i and other share at least one hour.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Duration returns the span of the interval in hours.
func (i Interval) Duration() int {
	return i.End - i.Start
}

// String formats the interval as "start:end".
func (i Interval) String() string {
	return fmt.Sprintf("%d:%d", i.Start, i.End)
}

// Gaps returns the maximal free intervals within [dayStart, dayEnd) that are
// not covered by booked. booked must be sorted ascending by start and
// mutually non-overlapping. Zero-width gaps are never emitted.
func Gaps(booked []Interval, dayStart, dayEnd int) []Interval {
	var free []Interval
	if len(booked) == 0 {
		if dayStart < dayEnd {
			free = append(free, Interval{Start: dayStart, End: dayEnd})
		}
		return free
	}
	if dayStart < booked[0].Start {
		free = append(free, Interval{Start: dayStart, End: booked[0].Start})
	}
	for i := 0; i < len(booked)-1; i++ {
		if booked[i].End < booked[i+1].Start {
			free = append(free, Interval{Start: booked[i].End, End: booked[i+1].Start})
		}
	}
	if last := booked[len(booked)-1].End; last < dayEnd {
		free = append(free, Interval{Start: last, End: dayEnd})
	}
	return free
}
