package overlay

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Store порт локального overlay хранилища (Tier 1).
// Хранит записи, созданные или измененные при недоступности платформы:
// по одной коллекции на вид сущности плюс производная проекция рейтингов.
// Tier 2 (встроенный датасет) никогда не мутируется - все записи
// fallback-операций попадают только сюда.
type Store interface {
	Bookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	BookingByID(ctx context.Context, id string) (*domain.Booking, error)
	SaveBooking(ctx context.Context, booking *domain.Booking) error

	ReviewsByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Review, error)
	ReviewByID(ctx context.Context, id string) (*domain.Review, error)
	SaveReview(ctx context.Context, review *domain.Review) error
	DeleteReview(ctx context.Context, id string) error

	FavouritesByUser(ctx context.Context, userID string) ([]*domain.Favourite, error)
	FavouriteByPair(ctx context.Context, userID, restaurantID string) (*domain.Favourite, error)
	SaveFavourite(ctx context.Context, favourite *domain.Favourite) error
	DeleteFavourite(ctx context.Context, id string) error

	RatingByRestaurant(ctx context.Context, restaurantID string) (*domain.RatingProjection, error)
	SaveRating(ctx context.Context, rating *domain.RatingProjection) error

	// DeletedReviewIDs возвращает ID отзывов Tier 2, удаленных offline.
	// Такие отзывы исключаются из merge при чтении.
	DeletedReviewIDs(ctx context.Context) ([]string, error)
	// DeletedFavouriteIDs аналогично для избранного
	DeletedFavouriteIDs(ctx context.Context) ([]string, error)
}

// Observer интерфейс для учета операций хранилища в метриках
type Observer interface {
	IncOverlayOp(collection, operation string)
}

// NopObserver заглушка, когда метрики выключены
type NopObserver struct{}

// IncOverlayOp ничего не делает
func (NopObserver) IncOverlayOp(collection, operation string) {}
