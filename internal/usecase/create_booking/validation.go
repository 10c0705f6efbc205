package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.RestaurantID == "" {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.TimeSlot.IsValid() {
		return fmt.Errorf("%w: timeSlot must be one of %v", ErrInvalidInput, domain.TimeSlots)
	}

	if req.Seats < domain.MinBookingSeats {
		return fmt.Errorf("%w: seats must be at least %d", ErrInvalidInput, domain.MinBookingSeats)
	}

	if strings.TrimSpace(req.ContactName) == "" {
		return fmt.Errorf("%w: contactName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ContactPhone) == "" {
		return fmt.Errorf("%w: contactPhone is required", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests must not exceed %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateDate проверяет формат даты и что дата не в прошлом
func validateDate(date string, now time.Time) error {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return fmt.Errorf("%w: date must be in %s format", ErrInvalidInput, domain.DateFormat)
	}

	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(nowOnly) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date)
	}

	return nil
}

// lockKey строит ключ сериализации для слота
func lockKey(restaurantID, date string, slot domain.TimeSlot) string {
	return fmt.Sprintf("%s|%s|%s", restaurantID, date, slot)
}
