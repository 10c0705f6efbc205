package catalog

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// PlatformClient интерфейс клиента авторитетного сервиса платформы
type PlatformClient interface {
	ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)
}

// SeedSource интерфейс встроенного датасета (Tier 2)
type SeedSource interface {
	Restaurants() []*domain.Restaurant
	RestaurantByID(id string) (*domain.Restaurant, bool)
	MenuByRestaurant(restaurantID string) []*domain.MenuItem
}

// OverlayStore интерфейс локального overlay хранилища (Tier 1).
// Каталогу нужны только локально пересчитанные проекции рейтингов.
type OverlayStore interface {
	RatingByRestaurant(ctx context.Context, restaurantID string) (*domain.RatingProjection, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
