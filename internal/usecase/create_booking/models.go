package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          string          // ID пользователя из заголовка авторизации
	RestaurantID    string          // ID ресторана
	Date            string          // Дата бронирования (YYYY-MM-DD)
	TimeSlot        domain.TimeSlot // Один из фиксированных слотов
	Seats           int             // Количество мест
	ContactName     string          // Контактное имя
	ContactPhone    string          // Контактный телефон
	SpecialRequests *string         // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string          // ID созданного бронирования
	RestaurantID    string          // ID ресторана
	UserID          string          // ID пользователя
	Date            string          // Дата бронирования
	TimeSlot        domain.TimeSlot // Слот
	Seats           int             // Количество мест
	Status          string          // Статус бронирования
	ContactName     string          // Контактное имя
	ContactPhone    string          // Контактный телефон
	SpecialRequests *string         // Пожелания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
