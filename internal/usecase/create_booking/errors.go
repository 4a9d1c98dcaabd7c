package create_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнено одно из обязательных полей
	ErrMissingFields = errors.New("create_booking: missing required fields (customer_id, resource_id, date, time)")

	// ErrInvalidInput возвращается при некорректном формате входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotAlreadyBooked возвращается, когда на слот (resource_id, date, time) уже есть бронирование
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
