package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

// StatusConfirmed is the only modelled state: a booking exists only once it is confirmed
const StatusConfirmed BookingStatus = "confirmed"

// Booking represents a confirmed reservation of one slot by one customer
type Booking struct {
	ID            uuid.UUID
	CustomerID    string
	ResourceID    string
	Date          types.DateString
	Time          types.TimeString
	CustomerEmail *string
	Status        BookingStatus
	CreatedAt     time.Time
}

// SlotKey returns the (resource, date, time) triple that identifies the booked slot
func (b *Booking) SlotKey() SlotKey {
	return SlotKey{ResourceID: b.ResourceID, Date: b.Date, Time: b.Time}
}

// HasEmail returns true if the booking carries a customer contact for notifications
func (b *Booking) HasEmail() bool {
	return b.CustomerEmail != nil && *b.CustomerEmail != ""
}
