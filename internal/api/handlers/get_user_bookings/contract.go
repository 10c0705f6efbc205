package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type BookingService interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
