package get_availability

import "github.com/m04kA/SMC-RestaurantService/internal/domain"

// Request модель запроса доступности слота
type Request struct {
	RestaurantID string          // ID ресторана
	Date         string          // Дата (YYYY-MM-DD)
	TimeSlot     domain.TimeSlot // Один из фиксированных слотов
}

// Response модель ответа с количеством свободных мест
type Response struct {
	RestaurantID string          // ID ресторана
	Date         string          // Дата
	TimeSlot     domain.TimeSlot // Слот
	Available    int             // Свободных мест (>= 0)
}
