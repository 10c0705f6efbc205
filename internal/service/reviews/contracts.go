package reviews

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// PlatformClient интерфейс клиента авторитетного сервиса платформы
type PlatformClient interface {
	ListReviews(ctx context.Context, restaurantID string) ([]*domain.Review, error)
	GetReview(ctx context.Context, reviewID string) (*domain.Review, error)
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}

// SeedSource интерфейс встроенного датасета (Tier 2)
type SeedSource interface {
	RestaurantByID(id string) (*domain.Restaurant, bool)
	ReviewsByRestaurant(restaurantID string) []*domain.Review
	ReviewByID(id string) (*domain.Review, bool)
}

// OverlayStore интерфейс локального overlay хранилища (Tier 1)
type OverlayStore interface {
	ReviewsByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Review, error)
	ReviewByID(ctx context.Context, id string) (*domain.Review, error)
	SaveReview(ctx context.Context, review *domain.Review) error
	DeleteReview(ctx context.Context, id string) error
	SaveRating(ctx context.Context, rating *domain.RatingProjection) error
	DeletedReviewIDs(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
