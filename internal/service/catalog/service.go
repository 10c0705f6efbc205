package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/platformapi"
	"github.com/m04kA/SMC-RestaurantService/internal/resolver"
)

// Service сервис каталога ресторанов.
// Чтения идут через resolver: платформа авторитетна, при ее недоступности
// каталог собирается из seed датасета с локальными проекциями рейтингов.
type Service struct {
	resolver *resolver.Resolver
	platform PlatformClient
	seed     SeedSource
	overlay  OverlayStore
	logger   Logger
}

// NewService создает сервис каталога
func NewService(res *resolver.Resolver, platform PlatformClient, seed SeedSource, overlayStore OverlayStore, logger Logger) *Service {
	return &Service{
		resolver: res,
		platform: platform,
		seed:     seed,
		overlay:  overlayStore,
		logger:   logger,
	}
}

// List возвращает список ресторанов
func (s *Service) List(ctx context.Context) ([]*domain.Restaurant, error) {
	restaurants, err := resolver.Execute(ctx, s.resolver, "catalog.list",
		func(ctx context.Context) ([]*domain.Restaurant, error) {
			return s.platform.ListRestaurants(ctx)
		},
		func(ctx context.Context) ([]*domain.Restaurant, error) {
			local := s.seed.Restaurants()
			for _, restaurant := range local {
				s.applyRatingProjection(ctx, restaurant)
			}
			return resolver.Merge(nil, local), nil
		},
	)
	if err != nil {
		s.logger.Error("List: failed to resolve restaurants: %v", err)
		return nil, s.mapError(err)
	}
	return restaurants, nil
}

// GetByID возвращает ресторан по ID
func (s *Service) GetByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	restaurant, err := resolver.Execute(ctx, s.resolver, "catalog.get",
		func(ctx context.Context) (*domain.Restaurant, error) {
			return s.platform.GetRestaurant(ctx, restaurantID)
		},
		func(ctx context.Context) (*domain.Restaurant, error) {
			local, ok := s.seed.RestaurantByID(restaurantID)
			if !ok {
				return nil, ErrRestaurantNotFound
			}
			s.applyRatingProjection(ctx, local)
			return local, nil
		},
	)
	if err != nil {
		if !errors.Is(err, ErrRestaurantNotFound) && !errors.Is(err, platformapi.ErrNotFound) {
			s.logger.Error("GetByID: failed to resolve restaurant %s: %v", restaurantID, err)
		}
		return nil, s.mapError(err)
	}
	return restaurant, nil
}

// GetMenu возвращает меню ресторана
func (s *Service) GetMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	menu, err := resolver.Execute(ctx, s.resolver, "catalog.menu",
		func(ctx context.Context) ([]*domain.MenuItem, error) {
			return s.platform.GetMenu(ctx, restaurantID)
		},
		func(ctx context.Context) ([]*domain.MenuItem, error) {
			if _, ok := s.seed.RestaurantByID(restaurantID); !ok {
				return nil, ErrRestaurantNotFound
			}
			return s.seed.MenuByRestaurant(restaurantID), nil
		},
	)
	if err != nil {
		if !errors.Is(err, ErrRestaurantNotFound) && !errors.Is(err, platformapi.ErrNotFound) {
			s.logger.Error("GetMenu: failed to resolve menu for restaurant %s: %v", restaurantID, err)
		}
		return nil, s.mapError(err)
	}
	return menu, nil
}

// applyRatingProjection накладывает локально пересчитанную проекцию рейтинга
// на seed-версию ресторана. Отсутствие проекции означает, что offline
// рейтинг ресторана не менялся.
func (s *Service) applyRatingProjection(ctx context.Context, restaurant *domain.Restaurant) {
	projection, err := s.overlay.RatingByRestaurant(ctx, restaurant.ID)
	if err != nil {
		if !errors.Is(err, overlay.ErrNotFound) {
			s.logger.Warn("applyRatingProjection: failed to read rating for restaurant %s: %v", restaurant.ID, err)
		}
		return
	}
	restaurant.Rating = projection.Rating
	restaurant.TotalReviews = projection.TotalReviews
}

func (s *Service) mapError(err error) error {
	switch {
	case errors.Is(err, ErrRestaurantNotFound):
		return err
	case errors.Is(err, platformapi.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrRestaurantNotFound, err)
	case errors.Is(err, platformapi.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
