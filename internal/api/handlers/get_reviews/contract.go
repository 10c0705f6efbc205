package get_reviews

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type ReviewService interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Review, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
