package confirm_booking

import "github.com/m04kA/SMC-SlotBookingService/internal/domain"

// Request модель запроса на подтверждение бронирования
type Request struct {
	BookingID string
}

// Response результат обработки подтверждения
// Неудачная отправка уведомления - не ошибка, а Outcome.Status == failed
type Response struct {
	BookingID string
	Outcome   domain.NotificationOutcome
}
