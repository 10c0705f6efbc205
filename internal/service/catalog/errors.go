package catalog

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден ни на одном уровне
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrUnauthorized возвращается при отказе платформы в авторизации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
