package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/platformapi"
	"github.com/m04kA/SMC-RestaurantService/internal/resolver"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

// Service сервис бронирований.
// Чтения и записи идут через resolver: платформа авторитетна, при ее
// недоступности записи создаются и изменяются в overlay хранилище.
// Seed датасет при этом не мутируется - изменение seed-бронирования
// кладет в overlay теневую запись с тем же ID.
type Service struct {
	resolver *resolver.Resolver
	platform PlatformClient
	seed     SeedSource
	overlay  OverlayStore
	logger   Logger
	now      func() time.Time
}

// NewService создает сервис бронирований
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

// AvailableSeats возвращает количество свободных мест на слот.
// Fallback-вычисление: totalSeats ресторана минус сумма мест активных
// (pending/confirmed) бронирований на тот же ресторан, дату и слот.
// Отрицательный остаток прижимается к нулю.
func (s *Service) AvailableSeats(ctx context.Context, restaurantID string, date string, slot domain.TimeSlot) (int, error) {
	available, err := resolver.Execute(ctx, s.resolver, "bookings.availability",
		func(ctx context.Context) (int, error) {
			return s.platform.GetAvailability(ctx, restaurantID, date, slot)
		},
		func(ctx context.Context) (int, error) {
			restaurant, ok := s.seed.RestaurantByID(restaurantID)
			if !ok {
				return 0, ErrRestaurantNotFound
			}

			merged, err := s.localBookings(ctx, domain.BookingFilter{
				RestaurantID: ptr.Ptr(restaurantID),
				Date:         ptr.Ptr(date),
				TimeSlot:     ptr.Ptr(slot),
			})
			if err != nil {
				return 0, err
			}

			booked := 0
			for _, booking := range merged {
				if booking.HoldsCapacity() {
					booked += booking.Seats
				}
			}

			available := restaurant.TotalSeats - booked
			if available < 0 {
				available = 0
			}
			return available, nil
		},
	)
	if err != nil {
		if errors.Is(err, platformapi.ErrNotFound) {
			return 0, fmt.Errorf("%w: %v", ErrRestaurantNotFound, err)
		}
		if !errors.Is(err, ErrRestaurantNotFound) {
			s.logger.Error("AvailableSeats: failed to resolve availability for restaurant %s: %v", restaurantID, err)
		}
		return 0, s.mapError(err)
	}
	return available, nil
}

// Create сохраняет новое бронирование. Вызывается после проверки
// доступности мест; при недоступности платформы бронирование получает
// локальный ID и попадает в overlay со статусом pending.
func (s *Service) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created, err := resolver.Execute(ctx, s.resolver, "bookings.create",
		func(ctx context.Context) (*domain.Booking, error) {
			return s.platform.CreateBooking(ctx, booking)
		},
		func(ctx context.Context) (*domain.Booking, error) {
			local := *booking
			local.ID = overlay.NewLocalID()
			local.Status = domain.StatusPending
			local.CreatedAt = s.now()
			local.UpdatedAt = local.CreatedAt

			if err := s.overlay.SaveBooking(ctx, &local); err != nil {
				return nil, fmt.Errorf("failed to save booking to overlay: %w", err)
			}
			return &local, nil
		},
	)
	if err != nil {
		s.logger.Error("Create: failed to create booking for restaurant %s: %v", booking.RestaurantID, err)
		return nil, s.mapError(err)
	}

	s.logger.Info("Create: booking %s created for restaurant %s (%s %s, %d seats)",
		created.ID, created.RestaurantID, created.Date, created.TimeSlot, created.Seats)
	return created, nil
}

// GetByID возвращает бронирование по ID.
// Доступ: владелец бронирования либо менеджер/администратор.
func (s *Service) GetByID(ctx context.Context, bookingID string, actorID string, role domain.Role) (*domain.Booking, error) {
	booking, err := s.resolveBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != actorID && !role.CanManageBookings() {
		return nil, fmt.Errorf("%w: user %s has no access to booking %s", ErrForbidden, actorID, bookingID)
	}
	return booking, nil
}

// ListByUser возвращает бронирования пользователя, сначала новые
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	filter := domain.BookingFilter{UserID: ptr.Ptr(userID)}

	bookings, err := resolver.Execute(ctx, s.resolver, "bookings.list_by_user",
		func(ctx context.Context) ([]*domain.Booking, error) {
			return s.platform.ListBookings(ctx, filter)
		},
		func(ctx context.Context) ([]*domain.Booking, error) {
			return s.localBookings(ctx, filter)
		},
	)
	if err != nil {
		s.logger.Error("ListByUser: failed to resolve bookings for user %s: %v", userID, err)
		return nil, s.mapError(err)
	}
	return bookings, nil
}

// ListByRestaurant возвращает бронирования ресторана с опциональным
// фильтром по статусу. Доступно только менеджеру/администратору.
func (s *Service) ListByRestaurant(ctx context.Context, restaurantID string, status *domain.BookingStatus, role domain.Role) ([]*domain.Booking, error) {
	if !role.CanManageBookings() {
		return nil, fmt.Errorf("%w: role %s cannot list restaurant bookings", ErrForbidden, role)
	}

	filter := domain.BookingFilter{RestaurantID: ptr.Ptr(restaurantID), Status: status}

	bookings, err := resolver.Execute(ctx, s.resolver, "bookings.list_by_restaurant",
		func(ctx context.Context) ([]*domain.Booking, error) {
			return s.platform.ListBookings(ctx, filter)
		},
		func(ctx context.Context) ([]*domain.Booking, error) {
			return s.localBookings(ctx, filter)
		},
	)
	if err != nil {
		s.logger.Error("ListByRestaurant: failed to resolve bookings for restaurant %s: %v", restaurantID, err)
		return nil, s.mapError(err)
	}
	return bookings, nil
}

// Cancel отменяет бронирование.
// Доступ: владелец бронирования либо менеджер/администратор.
// Отменить можно только pending или confirmed бронирование.
func (s *Service) Cancel(ctx context.Context, bookingID string, actorID string, role domain.Role) (*domain.Booking, error) {
	booking, err := s.resolveBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != actorID && !role.CanManageBookings() {
		return nil, fmt.Errorf("%w: user %s has no access to booking %s", ErrForbidden, actorID, bookingID)
	}
	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: booking %s is in status %s", ErrCannotCancel, bookingID, booking.Status)
	}

	cancelled, err := resolver.Execute(ctx, s.resolver, "bookings.cancel",
		func(ctx context.Context) (*domain.Booking, error) {
			return s.platform.CancelBooking(ctx, bookingID)
		},
		func(ctx context.Context) (*domain.Booking, error) {
			return s.saveStatusLocally(ctx, booking, domain.StatusCancelled)
		},
	)
	if err != nil {
		s.logger.Error("Cancel: failed to cancel booking %s: %v", bookingID, err)
		return nil, s.mapError(err)
	}

	s.logger.Info("Cancel: booking %s cancelled by user %s", bookingID, actorID)
	return cancelled, nil
}

// UpdateStatus переводит бронирование в новый статус согласно таблице
// допустимых переходов. Доступно только менеджеру/администратору.
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, next domain.BookingStatus, role domain.Role) (*domain.Booking, error) {
	if !role.CanManageBookings() {
		return nil, fmt.Errorf("%w: role %s cannot update booking status", ErrForbidden, role)
	}
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	booking, err := s.resolveBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
	}

	updated, err := resolver.Execute(ctx, s.resolver, "bookings.update_status",
		func(ctx context.Context) (*domain.Booking, error) {
			return s.platform.UpdateBookingStatus(ctx, bookingID, next)
		},
		func(ctx context.Context) (*domain.Booking, error) {
			return s.saveStatusLocally(ctx, booking, next)
		},
	)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to update booking %s to %s: %v", bookingID, next, err)
		return nil, s.mapError(err)
	}

	s.logger.Info("UpdateStatus: booking %s moved to status %s", bookingID, next)
	return updated, nil
}

// resolveBooking читает бронирование через resolver.
// Fallback-порядок: overlay (теневые записи затеняют seed), затем seed.
func (s *Service) resolveBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := resolver.Execute(ctx, s.resolver, "bookings.get",
		func(ctx context.Context) (*domain.Booking, error) {
			return s.platform.GetBooking(ctx, bookingID)
		},
		func(ctx context.Context) (*domain.Booking, error) {
			local, err := s.overlay.BookingByID(ctx, bookingID)
			if err == nil {
				return local, nil
			}
			if !errors.Is(err, overlay.ErrNotFound) {
				return nil, fmt.Errorf("failed to read booking from overlay: %w", err)
			}

			seeded, ok := s.seed.BookingByID(bookingID)
			if !ok {
				return nil, ErrBookingNotFound
			}
			return seeded, nil
		},
	)
	if err != nil {
		if !errors.Is(err, ErrBookingNotFound) && !errors.Is(err, platformapi.ErrNotFound) {
			s.logger.Error("resolveBooking: failed to resolve booking %s: %v", bookingID, err)
		}
		return nil, s.mapError(err)
	}
	return booking, nil
}

// localBookings собирает бронирования из локальных уровней:
// overlay-версии затеняют seed-версии с тем же ID
func (s *Service) localBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	shadowed, err := s.overlay.Bookings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings from overlay: %w", err)
	}
	return resolver.Merge(shadowed, s.seed.Bookings(filter)), nil
}

// saveStatusLocally кладет в overlay копию бронирования с новым статусом
func (s *Service) saveStatusLocally(ctx context.Context, booking *domain.Booking, next domain.BookingStatus) (*domain.Booking, error) {
	updated := *booking
	updated.Status = next
	updated.UpdatedAt = s.now()

	if err := s.overlay.SaveBooking(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save booking to overlay: %w", err)
	}
	return &updated, nil
}

func (s *Service) mapError(err error) error {
	switch {
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrRestaurantNotFound),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrCannotCancel),
		errors.Is(err, ErrInvalidTransition):
		return err
	case errors.Is(err, platformapi.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrBookingNotFound, err)
	case errors.Is(err, platformapi.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, platformapi.ErrValidation):
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
