package create_review

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type ReviewService interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
