package booking

import "errors"

var (
	// ErrInvalidDuration is returned when a slot is empty, reversed, lies
	// outside the day, or exceeds the maximum single-booking span.
	ErrInvalidDuration = errors.New("invalid booking duration")

	// ErrSlotUnavailable is returned when a slot overlaps an existing
	// booking. Callers are expected to branch on it, e.g. to fall back to
	// the suggestion endpoint.
	ErrSlotUnavailable = errors.New("slot is not available")
)
