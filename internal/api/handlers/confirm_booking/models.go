package confirm_booking

import (
	confirmBooking "github.com/m04kA/SMC-SlotBookingService/internal/usecase/confirm_booking"
)

const msgProcessed = "Confirmation processed"

// ConfirmRequest HTTP request model
type ConfirmRequest struct {
	AppointmentID string `json:"appointment_id"`
}

// ConfirmResponse HTTP response model
type ConfirmResponse struct {
	Message            string `json:"message"`
	AppointmentID      string `json:"appointment_id"`
	NotificationStatus string `json:"notification_status"` // "sent" | "failed"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmResponse {
	return &ConfirmResponse{
		Message:            msgProcessed,
		AppointmentID:      resp.BookingID,
		NotificationStatus: string(resp.Outcome.Status),
	}
}
