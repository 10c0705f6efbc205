package reviews

import "errors"

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден ни на одном уровне
	ErrReviewNotFound = errors.New("review not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден ни на одном уровне
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInvalidInput возвращается при невалидных данных отзыва
	ErrInvalidInput = errors.New("invalid review data")

	// ErrForbidden возвращается при попытке удалить чужой отзыв без роли admin
	ErrForbidden = errors.New("access denied")

	// ErrUnauthorized возвращается при отказе платформы в авторизации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews service: internal error")
)
