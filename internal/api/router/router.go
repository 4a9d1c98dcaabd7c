package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-SlotBookingService/internal/api/handlers/health"
	"github.com/m04kA/SMC-SlotBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBookingService/pkg/metrics"
)

// Handlers обработчики HTTP маршрутов
type Handlers struct {
	GetAvailableSlots http.HandlerFunc
	CreateBooking     http.HandlerFunc
	ConfirmBooking    http.HandlerFunc
	GetBooking        http.HandlerFunc
}

// Options параметры сборки роутера
type Options struct {
	Metrics     *metrics.Metrics // nil - метрики выключены
	MetricsPath string
	CORSOrigins []string
	Logger      middleware.Logger
}

// New собирает HTTP обработчик сервиса
func New(h Handlers, opts Options) http.Handler {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		if opts.MetricsPath != "" {
			r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
		}
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Слоты
	api.HandleFunc("/slots/available", h.GetAvailableSlots).Methods(http.MethodGet)

	// Бронирования
	api.HandleFunc("/appointments", h.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/appointments/confirm", h.ConfirmBooking).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", h.GetBooking).Methods(http.MethodGet)

	var handler http.Handler = r
	handler = middleware.CORS(opts.CORSOrigins)(handler)
	if opts.Logger != nil {
		handler = middleware.Recovery(opts.Logger)(handler)
	}
	return handler
}
