package get_user_favourites

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type FavouriteService interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Favourite, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
