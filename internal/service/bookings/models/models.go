package models

import (
	"time"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	ResourceID    string    `json:"resource_id"`
	Date          string    `json:"date"` // "2025-01-10"
	Time          string    `json:"time"` // "14:00"
	CustomerEmail *string   `json:"customer_email"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID.String(),
		CustomerID:    b.CustomerID,
		ResourceID:    b.ResourceID,
		Date:          b.Date.String(),
		Time:          b.Time.String(),
		CustomerEmail: b.CustomerEmail,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.UTC(),
	}
}
