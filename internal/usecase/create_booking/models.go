package create_booking

import "time"

// Request модель запроса на создание бронирования
// Поля приходят как есть из HTTP, валидация выполняется в usecase
type Request struct {
	CustomerID    string  // ID клиента
	ResourceID    string  // ID ресурса
	Date          string  // Дата слота ("2025-01-10")
	Time          string  // Время начала слота ("14:00")
	CustomerEmail *string // Email для подтверждения (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string    // ID созданного бронирования
	CustomerID    string    // ID клиента
	ResourceID    string    // ID ресурса
	Date          string    // Дата слота
	Time          string    // Время начала
	CustomerEmail *string   // Email клиента
	Status        string    // Статус бронирования
	CreatedAt     time.Time // Время создания (UTC)
}
