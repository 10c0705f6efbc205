package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
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

func (offlinePlatform) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	return nil, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	return nil, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) GetMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	return nil, platformapi.ErrServiceUnavailable
}

// onlinePlatform отдает фиксированный ответ, чтобы проверить авторитетность платформы
type onlinePlatform struct {
	restaurant *domain.Restaurant
}

func (p *onlinePlatform) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	return []*domain.Restaurant{p.restaurant}, nil
}

func (p *onlinePlatform) GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	return p.restaurant, nil
}

func (p *onlinePlatform) GetMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	return nil, nil
}

type fakeSeed struct {
	restaurants []*domain.Restaurant
	menu        []*domain.MenuItem
}

func (f *fakeSeed) Restaurants() []*domain.Restaurant {
	result := make([]*domain.Restaurant, 0, len(f.restaurants))
	for _, r := range f.restaurants {
		copied := *r
		result = append(result, &copied)
	}
	return result
}

func (f *fakeSeed) RestaurantByID(id string) (*domain.Restaurant, bool) {
	for _, r := range f.restaurants {
		if r.ID == id {
			copied := *r
			return &copied, true
		}
	}
	return nil, false
}

func (f *fakeSeed) MenuByRestaurant(restaurantID string) []*domain.MenuItem {
	result := make([]*domain.MenuItem, 0)
	for _, m := range f.menu {
		if m.RestaurantID == restaurantID {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result
}

func defaultSeed() *fakeSeed {
	return &fakeSeed{
		restaurants: []*domain.Restaurant{
			{ID: "rest_001", Name: "Bella Napoli", Rating: 4.5, TotalReviews: 2, Status: domain.RestaurantActive},
			{ID: "rest_002", Name: "Sakura House", Rating: 4.7, TotalReviews: 3, Status: domain.RestaurantActive},
		},
		menu: []*domain.MenuItem{
			{ID: "menu_001", RestaurantID: "rest_001", Name: "Margherita Pizza"},
			{ID: "menu_002", RestaurantID: "rest_001", Name: "Tiramisu"},
		},
	}
}

func newOfflineService(t *testing.T, seed *fakeSeed) (*Service, *filestore.Store) {
	t.Helper()
	store := filestore.New(filepath.Join(t.TempDir(), "overlay.json"), nil)
	res := resolver.New(nopLogger{}, nil)
	return NewService(res, offlinePlatform{}, seed, store, nopLogger{}), store
}

func TestGetByID_RemoteIsAuthoritative(t *testing.T) {
	remote := &domain.Restaurant{ID: "rest_001", Name: "Bella Napoli (renamed)", Rating: 4.9}
	store := filestore.New(filepath.Join(t.TempDir(), "overlay.json"), nil)
	svc := NewService(resolver.New(nopLogger{}, nil), &onlinePlatform{restaurant: remote}, defaultSeed(), store, nopLogger{})

	restaurant, err := svc.GetByID(context.Background(), "rest_001")
	require.NoError(t, err)
	assert.Equal(t, "Bella Napoli (renamed)", restaurant.Name)
	assert.Equal(t, 4.9, restaurant.Rating)
}

func TestGetByID_FallbackAppliesRatingProjection(t *testing.T) {
	svc, store := newOfflineService(t, defaultSeed())
	ctx := context.Background()

	// Без проекции отдаются seed-значения
	restaurant, err := svc.GetByID(ctx, "rest_001")
	require.NoError(t, err)
	assert.Equal(t, 4.5, restaurant.Rating)
	assert.Equal(t, 2, restaurant.TotalReviews)

	// Локальный пересчет затеняет seed-рейтинг
	require.NoError(t, store.SaveRating(ctx, &domain.RatingProjection{RestaurantID: "rest_001", Rating: 4.7, TotalReviews: 3}))

	restaurant, err = svc.GetByID(ctx, "rest_001")
	require.NoError(t, err)
	assert.Equal(t, 4.7, restaurant.Rating)
	assert.Equal(t, 3, restaurant.TotalReviews)
}

func TestList_FallbackReturnsSeedWithProjections(t *testing.T) {
	svc, store := newOfflineService(t, defaultSeed())
	ctx := context.Background()

	require.NoError(t, store.SaveRating(ctx, &domain.RatingProjection{RestaurantID: "rest_002", Rating: 3.0, TotalReviews: 4}))

	restaurants, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	byID := make(map[string]*domain.Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}
	assert.Equal(t, 4.5, byID["rest_001"].Rating)
	assert.Equal(t, 3.0, byID["rest_002"].Rating)
	assert.Equal(t, 4, byID["rest_002"].TotalReviews)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newOfflineService(t, defaultSeed())

	_, err := svc.GetByID(context.Background(), "rest_999")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestGetMenu_Fallback(t *testing.T) {
	svc, _ := newOfflineService(t, defaultSeed())
	ctx := context.Background()

	menu, err := svc.GetMenu(ctx, "rest_001")
	require.NoError(t, err)
	assert.Len(t, menu, 2)

	// Известный ресторан без позиций - пустое меню, не ошибка
	menu, err = svc.GetMenu(ctx, "rest_002")
	require.NoError(t, err)
	assert.Empty(t, menu)

	_, err = svc.GetMenu(ctx, "rest_999")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
