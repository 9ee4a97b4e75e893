// Package directory is the facade coordinating catalog lookups with
// room-level booking operations. One Directory instance is constructed at
// process start and handed to every request handler.
package directory

import (
	"fmt"

	"roombook-backend/internal/booking"
	"roombook-backend/internal/catalog"
)

// Notifier receives freed slots after a successful cancellation.
type Notifier interface {
	SlotFreed(room *booking.Room, slot booking.Interval)
}

// Config bounds the daily window and the suggestion list.
type Config struct {
	DayStart       int
	DayEnd         int
	MaxSuggestions int
}

// Directory owns the catalog and translates identities into room operations.
type Directory struct {
	catalog        *catalog.Catalog
	dayStart       int
	dayEnd         int
	maxSuggestions int
	notifier       Notifier
}

// New creates a directory with an empty catalog.
func New(cfg Config) *Directory {
	if cfg.DayEnd <= 0 {
		cfg.DayEnd = booking.DayEnd
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = 3
	}
	return &Directory{
		catalog:        catalog.New(),
		dayStart:       cfg.DayStart,
		dayEnd:         cfg.DayEnd,
		maxSuggestions: cfg.MaxSuggestions,
	}
}

// SetNotifier registers the freed-slot notifier. Call before serving.
func (d *Directory) SetNotifier(n Notifier) {
	d.notifier = n
}

// RoomBooking is a read-only projection of one stored interval.
type RoomBooking struct {
	Building string           `json:"building"`
	Floor    int              `json:"floor"`
	Room     string           `json:"room"`
	Slot     booking.Interval `json:"slot"`
}

// String formats the booking as "start:end floor building room".
func (b RoomBooking) String() string {
	return fmt.Sprintf("%s %d %s %s", b.Slot, b.Floor, b.Building, b.Room)
}

// RoomSlots is a read-only projection of one room's free slots.
type RoomSlots struct {
	Building  string             `json:"building"`
	Floor     int                `json:"floor"`
	Room      string             `json:"room"`
	FreeSlots []booking.Interval `json:"freeSlots"`
}

// AddBuilding registers a building.
func (d *Directory) AddBuilding(name string) error {
	return d.catalog.AddBuilding(name)
}

// AddFloor registers a floor on a building.
func (d *Directory) AddFloor(building string, floor int) error {
	return d.catalog.AddFloor(building, floor)
}

// AddRoom registers a room on a floor.
func (d *Directory) AddRoom(building string, floor int, name string) error {
	return d.catalog.AddRoom(building, floor, name)
}

// Book resolves the room and reserves [start, end) on it. On failure exactly
// nothing is mutated.
func (d *Directory) Book(building string, floor int, room string, start, end int) error {
	r, err := d.catalog.FindRoom(building, floor, room)
	if err != nil {
		return err
	}
	return r.Book(start, end)
}

// Cancel resolves the room and removes the exact booking [start, end). The
// boolean reports whether a booking was removed; the error only covers
// resolution failures. A removed booking is dispatched to the notifier.
func (d *Directory) Cancel(building string, floor int, room string, start, end int) (bool, error) {
	r, err := d.catalog.FindRoom(building, floor, room)
	if err != nil {
		return false, err
	}
	cancelled := r.Cancel(start, end)
	if cancelled && d.notifier != nil {
		d.notifier.SlotFreed(r, booking.Interval{Start: start, End: end})
	}
	return cancelled, nil
}

// ListBookings returns every stored interval across all rooms in walk order.
func (d *Directory) ListBookings() []RoomBooking {
	var out []RoomBooking
	d.catalog.Walk(func(r *booking.Room) bool {
		for _, slot := range r.Bookings() {
			out = append(out, RoomBooking{
				Building: r.Building,
				Floor:    r.Floor,
				Room:     r.Name,
				Slot:     slot,
			})
		}
		return true
	})
	return out
}

// ListFreeSlots returns every room with its free slots within the configured
// day window, in walk order.
func (d *Directory) ListFreeSlots() []RoomSlots {
	var out []RoomSlots
	d.catalog.Walk(func(r *booking.Room) bool {
		out = append(out, RoomSlots{
			Building:  r.Building,
			Floor:     r.Floor,
			Room:      r.Name,
			FreeSlots: r.FreeSlots(d.dayStart, d.dayEnd),
		})
		return true
	})
	return out
}
