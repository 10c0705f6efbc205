package get_booking

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type BookingService interface {
	GetByID(ctx context.Context, bookingID string, actorID string, role domain.Role) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
