package favourites

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден ни на одном уровне
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrAlreadyExists возвращается при явном добавлении уже избранного ресторана
	ErrAlreadyExists = errors.New("restaurant is already in favourites")

	// ErrUnauthorized возвращается при отказе платформы в авторизации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("favourites service: internal error")
)
