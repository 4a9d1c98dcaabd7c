package create_booking

import (
	createBooking "github.com/m04kA/SMC-SlotBookingService/internal/usecase/create_booking"
)

const msgBooked = "Appointment booked successfully"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID    string  `json:"customer_id"`
	ResourceID    string  `json:"resource_id"`
	Date          string  `json:"date"` // "2025-01-10"
	Time          string  `json:"time"` // "14:00"
	CustomerEmail *string `json:"customer_email,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
	CustomerID    string `json:"customer_id"`
	ResourceID    string `json:"resource_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerID:    r.CustomerID,
		ResourceID:    r.ResourceID,
		Date:          r.Date,
		Time:          r.Time,
		CustomerEmail: r.CustomerEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Message:       msgBooked,
		AppointmentID: resp.ID,
		CustomerID:    resp.CustomerID,
		ResourceID:    resp.ResourceID,
		Date:          resp.Date,
		Time:          resp.Time,
		Status:        resp.Status,
	}
}
