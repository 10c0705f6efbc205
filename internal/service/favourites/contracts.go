package favourites

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// PlatformClient интерфейс клиента авторитетного сервиса платформы
type PlatformClient interface {
	ListFavourites(ctx context.Context, userID string) ([]*domain.Favourite, error)
	ToggleFavourite(ctx context.Context, userID, restaurantID string) (bool, error)
}

// SeedSource интерфейс встроенного датасета (Tier 2)
type SeedSource interface {
	RestaurantByID(id string) (*domain.Restaurant, bool)
	FavouritesByUser(userID string) []*domain.Favourite
}

// OverlayStore интерфейс локального overlay хранилища (Tier 1)
type OverlayStore interface {
	FavouritesByUser(ctx context.Context, userID string) ([]*domain.Favourite, error)
	SaveFavourite(ctx context.Context, favourite *domain.Favourite) error
	DeleteFavourite(ctx context.Context, id string) error
	DeletedFavouriteIDs(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
