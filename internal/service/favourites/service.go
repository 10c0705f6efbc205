package favourites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/platformapi"
	"github.com/m04kA/SMC-RestaurantService/internal/resolver"
)

// Service сервис избранного.
// Toggle идемпотентен по паре (пользователь, ресторан): одна видимая запись
// на пару, повторный вызов возвращает систему в исходное состояние.
type Service struct {
	resolver *resolver.Resolver
	platform PlatformClient
	seed     SeedSource
	overlay  OverlayStore
	logger   Logger
	now      func() time.Time
}

// NewService создает сервис избранного
func NewService(res *resolver.Resolver, platform PlatformClient, seed SeedSource, overlayStore OverlayStore, logger Logger) *Service {
	return &Service{
		resolver: res,
		platform: platform,
		seed:     seed,
		overlay:  overlayStore,
		logger:   logger,
		now:      time.Now,
	}
}

// ListByUser возвращает избранное пользователя, сначала новые записи.
// Удаленные offline seed-записи исключаются по tombstone-записям.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*domain.Favourite, error) {
	result, err := resolver.Execute(ctx, s.resolver, "favourites.list",
		func(ctx context.Context) ([]*domain.Favourite, error) {
			return s.platform.ListFavourites(ctx, userID)
		},
		func(ctx context.Context) ([]*domain.Favourite, error) {
			return s.localFavourites(ctx, userID)
		},
	)
	if err != nil {
		s.logger.Error("ListByUser: failed to resolve favourites for user %s: %v", userID, err)
		return nil, s.mapError(err)
	}
	return result, nil
}

// Toggle переключает избранное для пары (пользователь, ресторан).
// Возвращает true, если после вызова ресторан в избранном.
func (s *Service) Toggle(ctx context.Context, userID, restaurantID string) (bool, error) {
	isFavourite, err := resolver.Execute(ctx, s.resolver, "favourites.toggle",
		func(ctx context.Context) (bool, error) {
			return s.platform.ToggleFavourite(ctx, userID, restaurantID)
		},
		func(ctx context.Context) (bool, error) {
			return s.toggleLocally(ctx, userID, restaurantID)
		},
	)
	if err != nil {
		if !errors.Is(err, ErrRestaurantNotFound) && !errors.Is(err, platformapi.ErrNotFound) {
			s.logger.Error("Toggle: failed to toggle favourite for user %s, restaurant %s: %v", userID, restaurantID, err)
		}
		return false, s.mapError(err)
	}

	s.logger.Info("Toggle: user %s, restaurant %s -> favourite=%t", userID, restaurantID, isFavourite)
	return isFavourite, nil
}

// Add явно добавляет ресторан в избранное.
// Возвращает ErrAlreadyExists, если пара уже существует.
func (s *Service) Add(ctx context.Context, userID, restaurantID string) error {
	existing, err := s.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if findByRestaurant(existing, restaurantID) != nil {
		return fmt.Errorf("%w: restaurant %s", ErrAlreadyExists, restaurantID)
	}

	if _, err := s.Toggle(ctx, userID, restaurantID); err != nil {
		return err
	}
	return nil
}

// Remove явно убирает ресторан из избранного.
// Отсутствие пары не считается ошибкой - операция идемпотентна.
func (s *Service) Remove(ctx context.Context, userID, restaurantID string) error {
	existing, err := s.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if findByRestaurant(existing, restaurantID) == nil {
		return nil
	}

	if _, err := s.Toggle(ctx, userID, restaurantID); err != nil {
		return err
	}
	return nil
}

// toggleLocally переключает пару на локальных уровнях: видимая запись
// удаляется (seed-запись получает tombstone), отсутствующая - создается
// в overlay с локальным ID
func (s *Service) toggleLocally(ctx context.Context, userID, restaurantID string) (bool, error) {
	visible, err := s.localFavourites(ctx, userID)
	if err != nil {
		return false, err
	}

	if existing := findByRestaurant(visible, restaurantID); existing != nil {
		if err := s.overlay.DeleteFavourite(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("failed to delete favourite from overlay: %w", err)
		}
		return false, nil
	}

	if _, ok := s.seed.RestaurantByID(restaurantID); !ok {
		return false, ErrRestaurantNotFound
	}

	favourite := &domain.Favourite{
		ID:           overlay.NewLocalID(),
		UserID:       userID,
		RestaurantID: restaurantID,
		CreatedAt:    s.now(),
	}
	if err := s.overlay.SaveFavourite(ctx, favourite); err != nil {
		return false, fmt.Errorf("failed to save favourite to overlay: %w", err)
	}
	return true, nil
}

// localFavourites собирает видимое избранное пользователя из локальных уровней
func (s *Service) localFavourites(ctx context.Context, userID string) ([]*domain.Favourite, error) {
	shadowed, err := s.overlay.FavouritesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read favourites from overlay: %w", err)
	}

	deleted, err := s.overlay.DeletedFavouriteIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read favourite tombstones: %w", err)
	}

	merged := resolver.Merge(shadowed, s.seed.FavouritesByUser(userID))
	return resolver.Exclude(merged, deleted), nil
}

func findByRestaurant(favourites []*domain.Favourite, restaurantID string) *domain.Favourite {
	for _, favourite := range favourites {
		if favourite.RestaurantID == restaurantID {
			return favourite
		}
	}
	return nil
}

func (s *Service) mapError(err error) error {
	switch {
	case errors.Is(err, ErrRestaurantNotFound), errors.Is(err, ErrAlreadyExists):
		return err
	case errors.Is(err, platformapi.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrRestaurantNotFound, err)
	case errors.Is(err, platformapi.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
