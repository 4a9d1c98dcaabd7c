package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-SlotBookingService/internal/api/handlers"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/slots/available
// Query params: resource_id (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resourceID := query.Get("resource_id")
	_, present := query["resource_id"]

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(resourceID, present))
	if err != nil {
		h.logger.Error("GET /slots/available - Failed to list slots: resource_id=%q, error=%v", resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots/available - Slots retrieved successfully: resource_id=%q, slots_count=%d",
		resourceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
