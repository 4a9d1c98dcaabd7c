package emailservice

import "errors"

var (
	// ErrNotConfigured возвращается, когда URL сервиса email не задан
	ErrNotConfigured = errors.New("emailservice client: url is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("emailservice client: internal error")

	// ErrUnavailable возвращается при сетевых ошибках и таймаутах
	ErrUnavailable = errors.New("emailservice client: service unavailable")

	// ErrRejected возвращается, когда сервис ответил не-2xx статусом
	ErrRejected = errors.New("emailservice client: message rejected")
)
