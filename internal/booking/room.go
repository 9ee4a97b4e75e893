package booking

import (
	"fmt"
	"sort"
	"sync"
)

// Room is a bookable conference room, identified by name within a floor of a
// building. Its booking set is always sorted ascending by start and mutually
// non-overlapping; the room guards it with its own reader/writer lock so
// booking one room never waits on another room's lock.
type Room struct {
	Name     string
	Floor    int
	Building string

	mu       sync.RWMutex
	bookings []Interval
}

// NewRoom creates an empty room.
func NewRoom(name string, floor int, building string) *Room {
	return &Room{Name: name, Floor: floor, Building: building}
}

// IsAvailable reports whether no stored booking overlaps [start, end).
func (r *Room) IsAvailable(start, end int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.overlapsLocked(start, end)
}

// overlapsLocked must be called with r.mu held (read or write).
func (r *Room) overlapsLocked(start, end int) bool {
	for _, slot := range r.bookings {
		if start < slot.End && slot.Start < end {
			return true
		}
	}
	return false
}

// Book reserves [start, end) if the slot is valid and free. The availability
// check and the insertion form one critical section under the write lock:
// two concurrent bookers for the same slot get exactly one success.
func (r *Room) Book(start, end int) error {
	slot, err := NewInterval(start, end)
	if err != nil {
		return err
	}
	if slot.Duration() > MaxBookingHours {
		return fmt.Errorf("%w: cannot book for more than %d hours", ErrInvalidDuration, MaxBookingHours)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overlapsLocked(start, end) {
		return fmt.Errorf("%w: room %s for slot %s", ErrSlotUnavailable, r.Name, slot)
	}
	// Insert in position to keep the set sorted by start.
	i := sort.Search(len(r.bookings), func(i int) bool { return r.bookings[i].Start >= start })
	r.bookings = append(r.bookings, Interval{})
	copy(r.bookings[i+1:], r.bookings[i:])
	r.bookings[i] = slot
	return nil
}

// Cancel removes the first booking exactly matching [start, end) and reports
// whether a match was found. A missing booking is a negative outcome, not an
// error.
func (r *Room) Cancel(start, end int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, slot := range r.bookings {
		if slot.Start == start && slot.End == end {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return true
		}
	}
	return false
}

// Bookings returns a snapshot copy of the booking set, sorted by start.
func (r *Room) Bookings() []Interval {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Interval, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// FreeSlots returns the complement of the booking set within [dayStart, dayEnd).
func (r *Room) FreeSlots(dayStart, dayEnd int) []Interval {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Gaps(r.bookings, dayStart, dayEnd)
}

// EarliestSlot finds the first t >= from where [t, t+duration) is free,
// scanning up to dayEnd-duration inclusive under a single read lock. The
// result is a point-in-time observation: a concurrent booking may invalidate
// it, so callers must re-validate through Book.
func (r *Room) EarliestSlot(from, duration, dayEnd int) (Interval, bool) {
	if duration <= 0 || from < 0 {
		return Interval{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for t := from; t <= dayEnd-duration; t++ {
		if !r.overlapsLocked(t, t+duration) {
			return Interval{Start: t, End: t + duration}, true
		}
	}
	return Interval{}, false
}
