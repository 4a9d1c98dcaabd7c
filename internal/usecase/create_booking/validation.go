package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
	"github.com/m04kA/SMC-SlotBookingService/pkg/types"
)

// validRequest проверенные данные запроса, значения сохраняются как есть
type validRequest struct {
	customerID    string
	key           domain.SlotKey
	customerEmail *string
}

// validateRequest валидирует входные данные запроса
// Пустое или пробельное обязательное поле - ErrMissingFields, некорректный email - ErrInvalidInput
func validateRequest(req *Request) (*validRequest, error) {
	if isBlank(req.CustomerID) || isBlank(req.ResourceID) || isBlank(req.Date) || isBlank(req.Time) {
		return nil, ErrMissingFields
	}

	email, err := validateEmail(req.CustomerEmail)
	if err != nil {
		return nil, err
	}

	return &validRequest{
		customerID: req.CustomerID,
		key: domain.SlotKey{
			ResourceID: req.ResourceID,
			Date:       types.DateString(req.Date),
			Time:       types.TimeString(req.Time),
		},
		customerEmail: email,
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validateEmail пустой email считается отсутствующим
func validateEmail(email *string) (*string, error) {
	if email == nil || isBlank(*email) {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*email)
	if len(trimmed) > domain.MaxEmailLength {
		return nil, fmt.Errorf("%w: customer_email exceeds %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return nil, fmt.Errorf("%w: invalid customer_email %q", ErrInvalidInput, *email)
	}

	return email, nil
}
