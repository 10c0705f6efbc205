package get_availability

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	AvailableSeats(ctx context.Context, restaurantID string, date string, slot domain.TimeSlot) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
