package reviews

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay/filestore"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/platformapi"
	"github.com/m04kA/SMC-RestaurantService/internal/resolver"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// offlinePlatform имитирует недоступную платформу
type offlinePlatform struct{}

func (offlinePlatform) ListReviews(ctx context.Context, restaurantID string) ([]*domain.Review, error) {
	return nil, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	return nil, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	return nil, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) DeleteReview(ctx context.Context, reviewID string) error {
	return platformapi.ErrServiceUnavailable
}

type fakeSeed struct {
	restaurants map[string]*domain.Restaurant
	reviews     []*domain.Review
}

func (f *fakeSeed) RestaurantByID(id string) (*domain.Restaurant, bool) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, false
	}
	copied := *r
	return &copied, true
}

func (f *fakeSeed) ReviewsByRestaurant(restaurantID string) []*domain.Review {
	result := make([]*domain.Review, 0)
	for _, r := range f.reviews {
		if r.RestaurantID == restaurantID {
			copied := *r
			result = append(result, &copied)
		}
	}
	return result
}

func (f *fakeSeed) ReviewByID(id string) (*domain.Review, bool) {
	for _, r := range f.reviews {
		if r.ID == id {
			copied := *r
			return &copied, true
		}
	}
	return nil, false
}

func seedReview(id, restaurantID, userID string, rating int) *domain.Review {
	return &domain.Review{
		ID:           id,
		RestaurantID: restaurantID,
		UserID:       userID,
		Rating:       rating,
		Comment:      "ok",
		CreatedAt:    time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newTestService(t *testing.T, seed *fakeSeed) (*Service, overlay.Store) {
	t.Helper()
	store := filestore.New(filepath.Join(t.TempDir(), "overlay.json"), nil)
	res := resolver.New(nopLogger{}, nil)
	return NewService(res, offlinePlatform{}, seed, store, nopLogger{}), store
}

func TestCreate_RecomputesRatingFromScratch(t *testing.T) {
	seed := &fakeSeed{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", Status: domain.RestaurantActive},
		},
		reviews: []*domain.Review{
			seedReview("rev_001", "rest_001", "user_001", 5),
			seedReview("rev_002", "rest_001", "user_002", 4),
		},
	}
	svc, store := newTestService(t, seed)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Review{
		RestaurantID: "rest_001",
		UserID:       "user_003",
		Rating:       5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// mean(5, 4, 5) = 4.666... -> 4.7
	projection, err := store.RatingByRestaurant(ctx, "rest_001")
	require.NoError(t, err)
	assert.Equal(t, 4.7, projection.Rating)
	assert.Equal(t, 3, projection.TotalReviews)
}

func TestDelete_RecomputesRatingAndTombstonesSeedReview(t *testing.T) {
	seed := &fakeSeed{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", Status: domain.RestaurantActive},
		},
		reviews: []*domain.Review{
			seedReview("rev_001", "rest_001", "user_001", 5),
			seedReview("rev_002", "rest_001", "user_002", 4),
			seedReview("rev_003", "rest_001", "user_003", 5),
		},
	}
	svc, store := newTestService(t, seed)
	ctx := context.Background()

	err := svc.Delete(ctx, "rev_002", "user_002", domain.RoleCustomer)
	require.NoError(t, err)

	// После удаления четверки: mean(5, 5) = 5.0
	projection, err := store.RatingByRestaurant(ctx, "rest_001")
	require.NoError(t, err)
	assert.Equal(t, 5.0, projection.Rating)
	assert.Equal(t, 2, projection.TotalReviews)

	// Seed-отзыв больше не виден при чтении
	visible, err := svc.ListByRestaurant(ctx, "rest_001")
	require.NoError(t, err)
	require.Len(t, visible, 2)
	for _, review := range visible {
		assert.NotEqual(t, "rev_002", review.ID)
	}
}

func TestDelete_LastReviewResetsRatingToZero(t *testing.T) {
	seed := &fakeSeed{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", Status: domain.RestaurantActive},
		},
		reviews: []*domain.Review{
			seedReview("rev_001", "rest_001", "user_001", 4),
		},
	}
	svc, store := newTestService(t, seed)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "rev_001", "user_001", domain.RoleCustomer))

	projection, err := store.RatingByRestaurant(ctx, "rest_001")
	require.NoError(t, err)
	assert.Equal(t, 0.0, projection.Rating)
	assert.Equal(t, 0, projection.TotalReviews)
}

func TestDelete_AccessControl(t *testing.T) {
	seed := &fakeSeed{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", Status: domain.RestaurantActive},
		},
		reviews: []*domain.Review{
			seedReview("rev_001", "rest_001", "user_001", 4),
		},
	}
	svc, _ := newTestService(t, seed)
	ctx := context.Background()

	// Чужой отзыв нельзя удалить обычной ролью, даже менеджеру
	err := svc.Delete(ctx, "rev_001", "user_999", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrForbidden)
	err = svc.Delete(ctx, "rev_001", "user_999", domain.RoleManager)
	assert.ErrorIs(t, err, ErrForbidden)

	// Администратор может
	require.NoError(t, svc.Delete(ctx, "rev_001", "user_999", domain.RoleAdmin))
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(t, &fakeSeed{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.Review{RestaurantID: "rest_001", UserID: "user_001", Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &domain.Review{RestaurantID: "rest_001", UserID: "user_001", Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &domain.Review{RestaurantID: "", UserID: "user_001", Rating: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_UnknownRestaurant(t *testing.T) {
	svc, _ := newTestService(t, &fakeSeed{restaurants: map[string]*domain.Restaurant{}})

	_, err := svc.Create(context.Background(), &domain.Review{
		RestaurantID: "rest_404",
		UserID:       "user_001",
		Rating:       5,
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newTestService(t, &fakeSeed{})

	err := svc.Delete(context.Background(), "rev_404", "user_001", domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
