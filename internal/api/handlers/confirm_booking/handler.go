package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotBookingService/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-SlotBookingService/internal/usecase/confirm_booking"
)

const (
	msgMissingID        = "appointment_id is required"
	msgInvalidBookingID = "Invalid appointment ID format"
	msgNotFound         = "Appointment not found"
	msgMissingEmail     = "Customer email not found in appointment"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments/confirm
// Пустое или некорректное тело трактуется как отсутствие appointment_id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{BookingID: req.AppointmentID})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrMissingBookingID):
			h.logger.Warn("POST /appointments/confirm - Missing appointment_id")
			handlers.RespondBadRequest(w, msgMissingID)

		case errors.Is(err, confirmBooking.ErrInvalidBookingID):
			h.logger.Warn("POST /appointments/confirm - Invalid appointment ID: %q", req.AppointmentID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("POST /appointments/confirm - Appointment not found: appointment_id=%s", req.AppointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmBooking.ErrMissingEmail):
			h.logger.Warn("POST /appointments/confirm - No customer email: appointment_id=%s", req.AppointmentID)
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("POST /appointments/confirm - Failed to confirm: appointment_id=%s, error=%v", req.AppointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/confirm - Confirmation processed: appointment_id=%s, notification_status=%s",
		result.BookingID, result.Outcome.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
