package health

import (
	"net/http"

	"github.com/m04kA/SMC-SlotBookingService/internal/api/handlers"
)

const msgOnline = "Appointment Scheduling Microservice Online"

// Response HTTP response model
type Response struct {
	Message string `json:"message"`
}

// Handle GET /health
func Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgOnline})
}
