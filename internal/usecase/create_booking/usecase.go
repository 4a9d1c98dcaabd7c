package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotBookingService/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	conflicts    ConflictRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// conflicts может быть nil (метрики выключены)
func NewUseCase(
	bookingRepo BookingRepository,
	conflicts ConflictRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		conflicts:    conflicts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
//
// Предварительная проверка занятости слота - только быстрый путь.
// Гарантию "не более одного бронирования на слот" даёт атомарная вставка в репозитории:
// если конкурентный запрос занял слот между проверкой и вставкой, Create вернёт
// ErrSlotAlreadyBooked и второй записи не появится.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%q, resource=%q, date=%q, time=%q",
		req.CustomerID, req.ResourceID, req.Date, req.Time)

	// 1. Валидация входных данных (до обращения к хранилищу)
	valid, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, не занят ли слот
	existing, err := uc.bookingRepo.FindBySlot(ctx, valid.key)
	switch {
	case err == nil:
		uc.logger.Warn("CreateBooking: slot resource=%s date=%s time=%s already booked by booking id=%s",
			valid.key.ResourceID, valid.key.Date, valid.key.Time, existing.ID)
		uc.recordConflict()
		return nil, ErrSlotAlreadyBooked
	case !errors.Is(err, bookingRepo.ErrBookingNotFound):
		uc.logger.Error("CreateBooking: failed to check slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
	}

	// 3. Создаем бронирование
	booking := &domain.Booking{
		ID:            uuid.New(),
		CustomerID:    valid.customerID,
		ResourceID:    valid.key.ResourceID,
		Date:          valid.key.Date,
		Time:          valid.key.Time,
		CustomerEmail: valid.customerEmail,
		Status:        domain.StatusConfirmed,
		CreatedAt:     uc.timeProvider.Now().UTC(),
	}

	// 4. Атомарная вставка
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
			uc.logger.Warn("CreateBooking: slot resource=%s date=%s time=%s taken by a concurrent booking",
				valid.key.ResourceID, valid.key.Date, valid.key.Time)
			uc.recordConflict()
			return nil, ErrSlotAlreadyBooked
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return &Response{
		ID:            created.ID.String(),
		CustomerID:    created.CustomerID,
		ResourceID:    created.ResourceID,
		Date:          created.Date.String(),
		Time:          created.Time.String(),
		CustomerEmail: created.CustomerEmail,
		Status:        string(created.Status),
		CreatedAt:     created.CreatedAt,
	}, nil
}

func (uc *UseCase) recordConflict() {
	if uc.conflicts != nil {
		uc.conflicts.IncBookingConflict()
	}
}
