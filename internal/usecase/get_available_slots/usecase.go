package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
)

// UseCase use case для получения доступных слотов
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Фильтр по ресурсу
	resourceID := resourceFilter(req)

	if resourceID != nil {
		uc.logger.Info("GetAvailableSlots: resource=%q", *resourceID)
	} else {
		uc.logger.Info("GetAvailableSlots: all resources")
	}

	// 2. Читаем слоты из хранилища (каждый запрос - свежее чтение)
	slots, err := uc.slotRepo.List(ctx, domain.SlotFilter{ResourceID: resourceID})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 3. Формируем ответ
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{
			ID:         s.ID.String(),
			ResourceID: s.ResourceID,
			Date:       s.Date.String(),
			Time:       s.Time.String(),
			Attributes: s.Attributes,
		})
	}

	uc.logger.Info("GetAvailableSlots: found %d slots", len(result))

	return &Response{
		ResourceID: resourceID,
		Slots:      result,
	}, nil
}
