package get_restaurant

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type CatalogService interface {
	GetByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
