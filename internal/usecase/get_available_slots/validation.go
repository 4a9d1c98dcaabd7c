package get_available_slots

import "strings"

// resourceFilter возвращает фильтр по ресурсу без изменений
// Пустой resource_id трактуется как отсутствие фильтра
func resourceFilter(req *Request) *string {
	if req.ResourceID == nil || strings.TrimSpace(*req.ResourceID) == "" {
		return nil
	}
	return req.ResourceID
}
