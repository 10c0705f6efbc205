package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/bookings"
)

// UseCase use case для получения доступности слота
type UseCase struct {
	bookingService BookingService
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingService BookingService, logger Logger) *UseCase {
	return &UseCase{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Execute выполняет use case получения доступности слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем количество свободных мест
	available, err := uc.bookingService.AvailableSeats(ctx, req.RestaurantID, req.Date, req.TimeSlot)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRestaurantNotFound):
			uc.logger.Warn("GetAvailability: restaurant %s not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		case errors.Is(err, bookings.ErrUnauthorized):
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		default:
			uc.logger.Error("GetAvailability: failed to get availability: %v", err)
			return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
	}

	return &Response{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		Available:    available,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID == "" {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in %s format", ErrInvalidInput, domain.DateFormat)
	}

	if !req.TimeSlot.IsValid() {
		return fmt.Errorf("%w: timeSlot must be one of %v", ErrInvalidInput, domain.TimeSlots)
	}

	return nil
}
