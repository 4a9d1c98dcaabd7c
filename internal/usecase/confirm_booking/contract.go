package confirm_booking

import (
	"context"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
)

// BookingLookup получение бронирования по строковому идентификатору
type BookingLookup interface {
	Get(ctx context.Context, rawID string) (*domain.Booking, error)
}

// Notifier отправка уведомления во внешний сервис
type Notifier interface {
	Send(ctx context.Context, notification *domain.Notification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
