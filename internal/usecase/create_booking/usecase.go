package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/bookings"
	"github.com/m04kA/SMC-RestaurantService/internal/service/catalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingService BookingService
	catalogService CatalogService
	locker         KeyLocker
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingService BookingService,
	catalogService CatalogService,
	locker KeyLocker,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingService: bookingService,
		catalogService: catalogService,
		locker:         locker,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и запись сериализуются посекционной блокировкой
// по ключу (ресторан, дата, слот), чтобы конкурентные запросы
// не создали бронирований сверх вместимости.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, restaurant=%s, date=%s, slot=%s, seats=%d",
		req.UserID, req.RestaurantID, req.Date, req.TimeSlot, req.Seats)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем ресторан
	restaurant, err := uc.catalogService.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, catalog.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateBooking: restaurant %s not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		if errors.Is(err, catalog.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		uc.logger.Error("CreateBooking: failed to get restaurant %s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 5. Проверяем, что ресторан принимает бронирования
	if !restaurant.IsActive() {
		uc.logger.Warn("CreateBooking: restaurant %s is not active (status=%s)", req.RestaurantID, restaurant.Status)
		return nil, ErrRestaurantNotAvailable
	}

	// 6. Сериализуем проверку и запись по ключу слота
	key := lockKey(req.RestaurantID, req.Date, req.TimeSlot)
	uc.locker.Lock(key)
	defer uc.locker.Unlock(key)

	// 7. Проверяем доступность мест
	available, err := uc.bookingService.AvailableSeats(ctx, req.RestaurantID, req.Date, req.TimeSlot)
	if err != nil {
		if errors.Is(err, bookings.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		if errors.Is(err, bookings.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		uc.logger.Error("CreateBooking: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	if req.Seats > available {
		uc.logger.Warn("CreateBooking: not enough seats for restaurant %s on %s %s: requested %d, available %d",
			req.RestaurantID, req.Date, req.TimeSlot, req.Seats, available)
		return nil, &CapacityError{Requested: req.Seats, Available: available}
	}

	// 8. Создаем бронирование
	booking := &domain.Booking{
		RestaurantID:    req.RestaurantID,
		UserID:          req.UserID,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		Seats:           req.Seats,
		Status:          domain.StatusPending,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		SpecialRequests: req.SpecialRequests,
	}

	created, err := uc.bookingService.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookings.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return &Response{
		ID:              created.ID,
		RestaurantID:    created.RestaurantID,
		UserID:          created.UserID,
		Date:            created.Date,
		TimeSlot:        created.TimeSlot,
		Seats:           created.Seats,
		Status:          string(created.Status),
		ContactName:     created.ContactName,
		ContactPhone:    created.ContactPhone,
		SpecialRequests: created.SpecialRequests,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
