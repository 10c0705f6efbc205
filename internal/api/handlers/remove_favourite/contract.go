package remove_favourite

import "context"

type FavouriteService interface {
	Remove(ctx context.Context, userID, restaurantID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
