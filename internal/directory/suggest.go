package directory

import (
	"fmt"

	"roombook-backend/internal/booking"
)

// Suggestion is one alternative offer for a desired slot.
type Suggestion struct {
	Building string           `json:"building"`
	Floor    int              `json:"floor"`
	Room     string           `json:"room"`
	Slot     booking.Interval `json:"slot"`
}

// String formats the offer as "room floor building available at start:end".
func (s Suggestion) String() string {
	return fmt.Sprintf("%s %d %s available at %s", s.Room, s.Floor, s.Building, s.Slot)
}

// Suggest scans all rooms for the earliest slot of the desired duration
// starting at or after start, and returns at most MaxSuggestions offers in
// room-iteration order. The earliest offer per room wins; offers are not
// re-sorted by time across rooms. An empty result is not an error.
//
// The scan takes no global snapshot: an offer can be invalidated by a
// concurrent booking, and callers re-validate through Book's atomic check.
func (d *Directory) Suggest(start, end int) []Suggestion {
	duration := end - start
	if duration <= 0 {
		return nil
	}
	var offers []Suggestion
	d.catalog.Walk(func(r *booking.Room) bool {
		if slot, ok := r.EarliestSlot(start, duration, d.dayEnd); ok {
			offers = append(offers, Suggestion{
				Building: r.Building,
				Floor:    r.Floor,
				Room:     r.Name,
				Slot:     slot,
			})
		}
		return len(offers) < d.maxSuggestions
	})
	return offers
}
