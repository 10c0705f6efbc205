package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено ни на одном уровне
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден ни на одном уровне
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrForbidden возвращается при попытке доступа к чужому бронированию
	// или выполнения операции без нужной роли
	ErrForbidden = errors.New("access denied")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCannotCancel возвращается при отмене бронирования в терминальном статусе
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrUnauthorized возвращается при отказе платформы в авторизации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
