package platformapi

import "errors"

var (
	// ErrServiceUnavailable возвращается при недоступности сервиса платформы
	// (сетевая ошибка, таймаут, 5xx). Сигнал для перехода на локальные данные.
	ErrServiceUnavailable = errors.New("platformapi client: service unavailable")

	// ErrUnauthorized возвращается при ответе 401.
	// Не является сигналом для fallback - сессия должна быть переавторизована.
	ErrUnauthorized = errors.New("platformapi client: unauthorized")

	// ErrNotFound возвращается, когда платформа авторитетно отвечает 404
	ErrNotFound = errors.New("platformapi client: resource not found")

	// ErrValidation возвращается, когда платформа отклонила запрос как некорректный
	ErrValidation = errors.New("platformapi client: request rejected as invalid")

	// ErrInvalidResponse возвращается при некорректном ответе от платформы
	ErrInvalidResponse = errors.New("platformapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("platformapi client: internal error")
)
