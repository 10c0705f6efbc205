package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	AvailableSeats(ctx context.Context, restaurantID string, date string, slot domain.TimeSlot) (int, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	GetByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error)
}

// KeyLocker интерфейс посекционной блокировки. Сериализует проверку
// доступности и создание бронирования по ключу (ресторан, дата, слот),
// чтобы конкурентные запросы не пробили вместимость.
type KeyLocker interface {
	Lock(key string)
	Unlock(key string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
