package list_restaurants

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type CatalogService interface {
	List(ctx context.Context) ([]*domain.Restaurant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
