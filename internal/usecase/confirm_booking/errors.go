package confirm_booking

import "errors"

var (
	// ErrMissingBookingID возвращается, когда идентификатор бронирования не передан
	ErrMissingBookingID = errors.New("confirm_booking: appointment_id is required")

	// ErrInvalidBookingID возвращается, когда идентификатор не разбирается
	ErrInvalidBookingID = errors.New("confirm_booking: invalid appointment id format")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: appointment not found")

	// ErrMissingEmail возвращается, когда в бронировании нет email клиента
	ErrMissingEmail = errors.New("confirm_booking: customer email not found in appointment")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
