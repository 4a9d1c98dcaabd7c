package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SlotBookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Get получает бронирование по строковому идентификатору
// Ошибки: ErrInvalidInput (пустой id), ErrInvalidBookingID (не разбирается), ErrBookingNotFound, ErrInternal
func (s *Service) Get(ctx context.Context, rawID string) (*domain.Booking, error) {
	id, err := ParseBookingID(rawID)
	if err != nil {
		s.logger.Warn("Get: invalid booking id=%q: %v", rawID, err)
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Get: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Get: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return booking, nil
}

// GetByID получает бронирование для отображения
func (s *Service) GetByID(ctx context.Context, rawID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%q", rawID)

	booking, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", booking.ID)
	return models.FromDomainBooking(booking), nil
}

// ParseBookingID разбирает строковый идентификатор бронирования
// Принимается только канонический вид UUID (36 символов с дефисами)
func ParseBookingID(rawID string) (uuid.UUID, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return uuid.Nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if len(rawID) != 36 {
		return uuid.Nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidBookingID, len(rawID))
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidBookingID, err)
	}
	return id, nil
}
