package get_available_slots

import (
	"encoding/json"

	getAvailableSlots "github.com/m04kA/SMC-SlotBookingService/internal/usecase/get_available_slots"
)

const msgAvailableSlots = "Available slots endpoint"

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Message        string          `json:"message"`
	ResourceID     *string         `json:"resource_id"` // null, если фильтр не задан
	AvailableSlots []AvailableSlot `json:"available_slots"`
}

// AvailableSlot слот в ответе
// Описательные атрибуты выводятся на одном уровне с фиксированными полями
type AvailableSlot struct {
	ID         string
	ResourceID string
	Date       string
	Time       string
	Attributes map[string]interface{}
}

// MarshalJSON фиксированные поля имеют приоритет над одноимёнными атрибутами
func (s AvailableSlot) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Attributes)+4)
	for k, v := range s.Attributes {
		out[k] = v
	}
	out["id"] = s.ID
	out["resource_id"] = s.ResourceID
	out["date"] = s.Date
	out["time"] = s.Time
	return json.Marshal(out)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:         slot.ID,
			ResourceID: slot.ResourceID,
			Date:       slot.Date,
			Time:       slot.Time,
			Attributes: slot.Attributes,
		}
	}

	return &AvailableSlotsResponse{
		Message:        msgAvailableSlots,
		ResourceID:     resp.ResourceID,
		AvailableSlots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(resourceID string, present bool) *getAvailableSlots.Request {
	if !present {
		return &getAvailableSlots.Request{}
	}
	return &getAvailableSlots.Request{ResourceID: &resourceID}
}
