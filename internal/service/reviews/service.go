package reviews

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/platformapi"
	"github.com/m04kA/SMC-RestaurantService/internal/resolver"
)

// Service сервис отзывов.
// Каждая fallback-мутация пересчитывает проекцию рейтинга ресторана
// с нуля по полному набору видимых отзывов - никаких инкрементальных
// обновлений, рейтинг всегда воспроизводим из отзывов.
type Service struct {
	resolver *resolver.Resolver
	platform PlatformClient
	seed     SeedSource
	overlay  OverlayStore
	logger   Logger
	now      func() time.Time
}

// NewService создает сервис отзывов
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

// ListByRestaurant возвращает отзывы ресторана, сначала новые.
// Удаленные offline seed-отзывы исключаются по tombstone-записям.
func (s *Service) ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Review, error) {
	result, err := resolver.Execute(ctx, s.resolver, "reviews.list",
		func(ctx context.Context) ([]*domain.Review, error) {
			return s.platform.ListReviews(ctx, restaurantID)
		},
		func(ctx context.Context) ([]*domain.Review, error) {
			return s.localReviews(ctx, restaurantID)
		},
	)
	if err != nil {
		s.logger.Error("ListByRestaurant: failed to resolve reviews for restaurant %s: %v", restaurantID, err)
		return nil, s.mapError(err)
	}
	return result, nil
}

// Create сохраняет новый отзыв и пересчитывает рейтинг ресторана.
// При недоступности платформы отзыв получает локальный ID, попадает
// в overlay, а пересчитанная проекция рейтинга - в overlay ratings.
func (s *Service) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if err := validateReview(review); err != nil {
		return nil, err
	}

	created, err := resolver.Execute(ctx, s.resolver, "reviews.create",
		func(ctx context.Context) (*domain.Review, error) {
			return s.platform.CreateReview(ctx, review)
		},
		func(ctx context.Context) (*domain.Review, error) {
			if _, ok := s.seed.RestaurantByID(review.RestaurantID); !ok {
				return nil, ErrRestaurantNotFound
			}

			local := *review
			local.ID = overlay.NewLocalID()
			local.CreatedAt = s.now()

			if err := s.overlay.SaveReview(ctx, &local); err != nil {
				return nil, fmt.Errorf("failed to save review to overlay: %w", err)
			}
			if err := s.recomputeRating(ctx, local.RestaurantID); err != nil {
				return nil, err
			}
			return &local, nil
		},
	)
	if err != nil {
		if !errors.Is(err, ErrRestaurantNotFound) && !errors.Is(err, platformapi.ErrNotFound) {
			s.logger.Error("Create: failed to create review for restaurant %s: %v", review.RestaurantID, err)
		}
		return nil, s.mapError(err)
	}

	s.logger.Info("Create: review %s created for restaurant %s (rating %d)", created.ID, created.RestaurantID, created.Rating)
	return created, nil
}

// Delete удаляет отзыв и пересчитывает рейтинг ресторана.
// Доступ: автор отзыва либо администратор.
// Offline-удаление seed-отзыва оставляет tombstone, локального - просто
// убирает запись из overlay.
func (s *Service) Delete(ctx context.Context, reviewID string, actorID string, role domain.Role) error {
	review, err := s.resolveReview(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != actorID && role != domain.RoleAdmin {
		return fmt.Errorf("%w: user %s cannot delete review %s", ErrForbidden, actorID, reviewID)
	}

	_, err = resolver.Execute(ctx, s.resolver, "reviews.delete",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.platform.DeleteReview(ctx, reviewID)
		},
		func(ctx context.Context) (struct{}, error) {
			if err := s.overlay.DeleteReview(ctx, reviewID); err != nil && !errors.Is(err, overlay.ErrNotFound) {
				return struct{}{}, fmt.Errorf("failed to delete review from overlay: %w", err)
			}
			if err := s.recomputeRating(ctx, review.RestaurantID); err != nil {
				return struct{}{}, err
			}
			return struct{}{}, nil
		},
	)
	if err != nil {
		s.logger.Error("Delete: failed to delete review %s: %v", reviewID, err)
		return s.mapError(err)
	}

	s.logger.Info("Delete: review %s deleted by user %s", reviewID, actorID)
	return nil
}

// resolveReview читает отзыв через resolver (overlay затеняет seed)
func (s *Service) resolveReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	review, err := resolver.Execute(ctx, s.resolver, "reviews.get",
		func(ctx context.Context) (*domain.Review, error) {
			return s.platform.GetReview(ctx, reviewID)
		},
		func(ctx context.Context) (*domain.Review, error) {
			local, err := s.overlay.ReviewByID(ctx, reviewID)
			if err == nil {
				return local, nil
			}
			if !errors.Is(err, overlay.ErrNotFound) {
				return nil, fmt.Errorf("failed to read review from overlay: %w", err)
			}

			seeded, ok := s.seed.ReviewByID(reviewID)
			if !ok {
				return nil, ErrReviewNotFound
			}
			return seeded, nil
		},
	)
	if err != nil {
		if !errors.Is(err, ErrReviewNotFound) && !errors.Is(err, platformapi.ErrNotFound) {
			s.logger.Error("resolveReview: failed to resolve review %s: %v", reviewID, err)
		}
		return nil, s.mapError(err)
	}
	return review, nil
}

// localReviews собирает видимые отзывы ресторана из локальных уровней
func (s *Service) localReviews(ctx context.Context, restaurantID string) ([]*domain.Review, error) {
	shadowed, err := s.overlay.ReviewsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to read reviews from overlay: %w", err)
	}

	deleted, err := s.overlay.DeletedReviewIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read review tombstones: %w", err)
	}

	merged := resolver.Merge(shadowed, s.seed.ReviewsByRestaurant(restaurantID))
	return resolver.Exclude(merged, deleted), nil
}

// recomputeRating пересчитывает проекцию рейтинга ресторана с нуля:
// среднее по всем видимым отзывам, округленное до одного знака.
// Ресторан без отзывов получает рейтинг 0 и 0 отзывов.
func (s *Service) recomputeRating(ctx context.Context, restaurantID string) error {
	visible, err := s.localReviews(ctx, restaurantID)
	if err != nil {
		return err
	}

	projection := &domain.RatingProjection{RestaurantID: restaurantID}
	if len(visible) > 0 {
		sum := 0
		for _, review := range visible {
			sum += review.Rating
		}
		mean := float64(sum) / float64(len(visible))
		projection.Rating = math.Round(mean*10) / 10
		projection.TotalReviews = len(visible)
	}

	if err := s.overlay.SaveRating(ctx, projection); err != nil {
		return fmt.Errorf("failed to save rating projection: %w", err)
	}
	return nil
}

func validateReview(review *domain.Review) error {
	if review.RestaurantID == "" {
		return fmt.Errorf("%w: restaurantId is required", ErrInvalidInput)
	}
	if review.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if review.Rating < domain.MinReviewRating || review.Rating > domain.MaxReviewRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinReviewRating, domain.MaxReviewRating)
	}
	if len(review.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment must not exceed %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}
	return nil
}

func (s *Service) mapError(err error) error {
	switch {
	case errors.Is(err, ErrReviewNotFound),
		errors.Is(err, ErrRestaurantNotFound),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrForbidden):
		return err
	case errors.Is(err, platformapi.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrReviewNotFound, err)
	case errors.Is(err, platformapi.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, platformapi.ErrValidation):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
