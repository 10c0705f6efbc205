package get_restaurant_bookings

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type BookingService interface {
	ListByRestaurant(ctx context.Context, restaurantID string, status *domain.BookingStatus, role domain.Role) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
