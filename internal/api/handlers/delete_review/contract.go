package delete_review

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type ReviewService interface {
	Delete(ctx context.Context, reviewID string, actorID string, role domain.Role) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
