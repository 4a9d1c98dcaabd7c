package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidBookingID возвращается, когда идентификатор не удаётся разобрать (неверный формат/длина)
	// Отличается от ErrBookingNotFound: это ошибка вызывающей стороны, а не отсутствие записи
	ErrInvalidBookingID = errors.New("invalid booking id format")

	// ErrInvalidInput возвращается при отсутствии идентификатора
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
