package get_booking

import "github.com/m04kA/SMC-SlotBookingService/internal/service/bookings/models"

const msgDetails = "Appointment details"

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Message       string                  `json:"message"`
	AppointmentID string                  `json:"appointment_id"`
	Appointment   *models.BookingResponse `json:"appointment"`
}
