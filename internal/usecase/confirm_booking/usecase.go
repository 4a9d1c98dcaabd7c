package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
	"github.com/m04kA/SMC-SlotBookingService/internal/service/bookings"
)

// UseCase use case подтверждения бронирования с отправкой уведомления клиенту
type UseCase struct {
	lookup   BookingLookup
	notifier Notifier
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(lookup BookingLookup, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		lookup:   lookup,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute выполняет use case подтверждения
//
// Ошибки возвращаются только для некорректного запроса и отсутствующего бронирования.
// Любой сбой уведомителя превращается в Outcome со статусом failed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	rawID := strings.TrimSpace(req.BookingID)
	uc.logger.Info("ConfirmBooking: booking id=%q", rawID)

	// 1. Проверяем наличие идентификатора
	if rawID == "" {
		uc.logger.Warn("ConfirmBooking: booking id is missing")
		return nil, ErrMissingBookingID
	}

	// 2. Получаем бронирование
	booking, err := uc.lookup.Get(ctx, rawID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			return nil, ErrMissingBookingID
		case errors.Is(err, bookings.ErrInvalidBookingID):
			return nil, fmt.Errorf("%w: %v", ErrInvalidBookingID, err)
		case errors.Is(err, bookings.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		default:
			uc.logger.Error("ConfirmBooking: failed to get booking id=%s: %v", rawID, err)
			return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
	}

	// 3. Без email уведомить некого
	if !booking.HasEmail() {
		uc.logger.Warn("ConfirmBooking: booking id=%s has no customer email", booking.ID)
		return nil, ErrMissingEmail
	}

	// 4. Отправляем уведомление, результат отправки не влияет на ответ
	notification := composeConfirmation(booking)
	outcome := domain.Sent()
	if err := uc.notifier.Send(ctx, notification); err != nil {
		uc.logger.Warn("ConfirmBooking: notification for booking id=%s failed: %v", booking.ID, err)
		outcome = domain.Failed(err.Error())
	} else {
		uc.logger.Info("ConfirmBooking: notification for booking id=%s sent", booking.ID)
	}

	return &Response{
		BookingID: booking.ID.String(),
		Outcome:   outcome,
	}, nil
}

// composeConfirmation формирует текстовое письмо-подтверждение
func composeConfirmation(booking *domain.Booking) *domain.Notification {
	return &domain.Notification{
		Recipients: []string{*booking.CustomerEmail},
		Subject:    domain.ConfirmationSubject,
		Body:       fmt.Sprintf(domain.ConfirmationBodyPattern, booking.ID),
		IsHTML:     false,
	}
}
