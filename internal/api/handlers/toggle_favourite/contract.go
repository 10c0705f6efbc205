package toggle_favourite

import "context"

type FavouriteService interface {
	Toggle(ctx context.Context, userID, restaurantID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
