package domain

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotBookingService/pkg/types"
)

// SlotKey is the identity of a slot for conflict purposes.
// At most one Booking may exist per SlotKey.
type SlotKey struct {
	ResourceID string
	Date       types.DateString
	Time       types.TimeString
}

// Slot represents an advertised bookable resource-time unit.
// Slots are advisory inventory: nothing enforces their uniqueness.
type Slot struct {
	ID         uuid.UUID
	ResourceID string
	Date       types.DateString
	Time       types.TimeString
	Attributes map[string]interface{} // Arbitrary descriptive fields (duration, location, price, ...)
}

// Key returns the conflict identity of the slot
func (s *Slot) Key() SlotKey {
	return SlotKey{ResourceID: s.ResourceID, Date: s.Date, Time: s.Time}
}

// SlotFilter filter for listing slots
type SlotFilter struct {
	ResourceID *string // nil - all resources
}
