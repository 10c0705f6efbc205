package bookings

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// PlatformClient интерфейс клиента авторитетного сервиса платформы
type PlatformClient interface {
	GetAvailability(ctx context.Context, restaurantID string, date string, slot domain.TimeSlot) (int, error)
	ListBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)
}

// SeedSource интерфейс встроенного датасета (Tier 2)
type SeedSource interface {
	RestaurantByID(id string) (*domain.Restaurant, bool)
	Bookings(filter domain.BookingFilter) []*domain.Booking
	BookingByID(id string) (*domain.Booking, bool)
}

// OverlayStore интерфейс локального overlay хранилища (Tier 1)
type OverlayStore interface {
	Bookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	BookingByID(ctx context.Context, id string) (*domain.Booking, error)
	SaveBooking(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
