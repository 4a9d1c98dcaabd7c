package get_available_slots

// Request модель запроса на получение доступных слотов
type Request struct {
	ResourceID *string // ID ресурса (nil - все ресурсы)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ResourceID *string // Фильтр, с которым выполнялся запрос
	Slots      []Slot  // Список слотов (никогда не nil)
}

// Slot модель слота
type Slot struct {
	ID         string                 // Идентификатор слота в хранилище
	ResourceID string                 // ID ресурса
	Date       string                 // Дата ("2025-01-10")
	Time       string                 // Время начала ("14:00")
	Attributes map[string]interface{} // Описательные поля слота (длительность, место, цена и т.д.)
}
