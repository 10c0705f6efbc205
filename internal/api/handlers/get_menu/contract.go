package get_menu

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type CatalogService interface {
	GetMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
