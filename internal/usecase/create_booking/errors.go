package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_booking: restaurant not found")

	// ErrRestaurantNotAvailable возвращается, когда ресторан не принимает бронирования
	ErrRestaurantNotAvailable = errors.New("create_booking: restaurant is not accepting bookings")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrNotEnoughSeats возвращается, когда запрошено больше мест, чем свободно на слоте
	ErrNotEnoughSeats = errors.New("create_booking: not enough seats available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnauthorized возвращается при отказе платформы в авторизации
	ErrUnauthorized = errors.New("create_booking: unauthorized")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// CapacityError детализирует отказ по вместимости: сколько мест запрошено
// и сколько реально свободно на слоте. Совместим с errors.Is(err, ErrNotEnoughSeats).
type CapacityError struct {
	Requested int
	Available int
}

// Error реализует интерфейс error
func (e *CapacityError) Error() string {
	return fmt.Sprintf("create_booking: not enough seats available: requested %d, available %d", e.Requested, e.Available)
}

// Unwrap связывает ошибку с сентинелом ErrNotEnoughSeats
func (e *CapacityError) Unwrap() error {
	return ErrNotEnoughSeats
}
