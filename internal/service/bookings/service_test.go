package bookings

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/overlay/filestore"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/platformapi"
	"github.com/m04kA/SMC-RestaurantService/internal/resolver"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// offlinePlatform имитирует недоступную платформу
type offlinePlatform struct{}

func (offlinePlatform) GetAvailability(ctx context.Context, restaurantID string, date string, slot domain.TimeSlot) (int, error) {
	return 0, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	return nil, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return nil, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return nil, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return nil, platformapi.ErrServiceUnavailable
}

func (offlinePlatform) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	return nil, platformapi.ErrServiceUnavailable
}

type fakeSeed struct {
	restaurants map[string]*domain.Restaurant
	bookings    []*domain.Booking
}

func (f *fakeSeed) RestaurantByID(id string) (*domain.Restaurant, bool) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, false
	}
	copied := *r
	return &copied, true
}

func (f *fakeSeed) Bookings(filter domain.BookingFilter) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.Matches(b) {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result
}

func (f *fakeSeed) BookingByID(id string) (*domain.Booking, bool) {
	for _, b := range f.bookings {
		if b.ID == id {
			copied := *b
			return &copied, true
		}
	}
	return nil, false
}

func newTestService(t *testing.T, seed *fakeSeed) *Service {
	t.Helper()
	store := filestore.New(filepath.Join(t.TempDir(), "overlay.json"), nil)
	res := resolver.New(nopLogger{}, nil)
	return NewService(res, offlinePlatform{}, seed, store, nopLogger{})
}

func seedBooking(id, restaurantID, userID string, slot domain.TimeSlot, seats int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		RestaurantID: restaurantID,
		UserID:       userID,
		Date:         "2026-09-15",
		TimeSlot:     slot,
		Seats:        seats,
		Status:       status,
		CreatedAt:    time.Date(2020, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestAvailableSeats_CountsOnlyActiveBookings(t *testing.T) {
	seed := &fakeSeed{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", TotalSeats: 40, Status: domain.RestaurantActive},
		},
		bookings: []*domain.Booking{
			seedBooking("book_001", "rest_001", "user_001", domain.Slot7PM, 4, domain.StatusConfirmed),
			seedBooking("book_002", "rest_001", "user_002", domain.Slot7PM, 6, domain.StatusPending),
			seedBooking("book_003", "rest_001", "user_003", domain.Slot7PM, 10, domain.StatusCancelled),
			seedBooking("book_004", "rest_001", "user_004", domain.Slot7PM, 8, domain.StatusCompleted),
			seedBooking("book_005", "rest_001", "user_005", domain.Slot8PM, 12, domain.StatusConfirmed),
		},
	}
	svc := newTestService(t, seed)

	available, err := svc.AvailableSeats(context.Background(), "rest_001", "2026-09-15", domain.Slot7PM)

	require.NoError(t, err)
	// 40 - (4 confirmed + 6 pending); cancelled, completed и другой слот не считаются
	assert.Equal(t, 30, available)
}

func TestAvailableSeats_ClampsAtZero(t *testing.T) {
	seed := &fakeSeed{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", TotalSeats: 5, Status: domain.RestaurantActive},
		},
		bookings: []*domain.Booking{
			seedBooking("book_001", "rest_001", "user_001", domain.Slot7PM, 8, domain.StatusConfirmed),
		},
	}
	svc := newTestService(t, seed)

	available, err := svc.AvailableSeats(context.Background(), "rest_001", "2026-09-15", domain.Slot7PM)

	require.NoError(t, err)
	assert.Equal(t, 0, available)
}

func TestAvailableSeats_RestaurantNotFound(t *testing.T) {
	svc := newTestService(t, &fakeSeed{restaurants: map[string]*domain.Restaurant{}})

	_, err := svc.AvailableSeats(context.Background(), "rest_404", "2026-09-15", domain.Slot7PM)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestCreate_OfflineMintsLocalPendingBooking(t *testing.T) {
	seed := &fakeSeed{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", TotalSeats: 40, Status: domain.RestaurantActive},
		},
	}
	svc := newTestService(t, seed)

	created, err := svc.Create(context.Background(), &domain.Booking{
		RestaurantID: "rest_001",
		UserID:       "user_001",
		Date:         "2026-09-15",
		TimeSlot:     domain.Slot7PM,
		Seats:        4,
		ContactName:  "Анна",
		ContactPhone: "+7 900 000-00-01",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "local-"))
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	// Созданное бронирование сразу уменьшает доступность
	available, err := svc.AvailableSeats(context.Background(), "rest_001", "2026-09-15", domain.Slot7PM)
	require.NoError(t, err)
	assert.Equal(t, 36, available)
}

func TestCancel_PendingBookingByOwner(t *testing.T) {
	seed := &fakeSeed{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", TotalSeats: 40, Status: domain.RestaurantActive},
		},
		bookings: []*domain.Booking{
			seedBooking("book_001", "rest_001", "user_001", domain.Slot7PM, 4, domain.StatusPending),
		},
	}
	svc := newTestService(t, seed)

	cancelled, err := svc.Cancel(context.Background(), "book_001", "user_001", domain.RoleCustomer)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	// Отмененное бронирование освобождает места
	available, err := svc.AvailableSeats(context.Background(), "rest_001", "2026-09-15", domain.Slot7PM)
	require.NoError(t, err)
	assert.Equal(t, 40, available)
}

func TestCancel_ForeignBookingForbidden(t *testing.T) {
	seed := &fakeSeed{
		bookings: []*domain.Booking{
			seedBooking("book_001", "rest_001", "user_001", domain.Slot7PM, 4, domain.StatusPending),
		},
	}
	svc := newTestService(t, seed)

	_, err := svc.Cancel(context.Background(), "book_001", "user_999", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrForbidden)

	// Менеджер может отменить чужое бронирование
	cancelled, err := svc.Cancel(context.Background(), "book_001", "user_999", domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
}

func TestCancel_TerminalBooking(t *testing.T) {
	seed := &fakeSeed{
		bookings: []*domain.Booking{
			seedBooking("book_001", "rest_001", "user_001", domain.Slot7PM, 4, domain.StatusCompleted),
		},
	}
	svc := newTestService(t, seed)

	_, err := svc.Cancel(context.Background(), "book_001", "user_001", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_RoleGating(t *testing.T) {
	seed := &fakeSeed{
		bookings: []*domain.Booking{
			seedBooking("book_001", "rest_001", "user_001", domain.Slot7PM, 4, domain.StatusPending),
		},
	}
	svc := newTestService(t, seed)

	_, err := svc.UpdateStatus(context.Background(), "book_001", domain.StatusConfirmed, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateStatus(context.Background(), "book_001", domain.StatusConfirmed, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
}

func TestUpdateStatus_LifecycleClosure(t *testing.T) {
	seed := &fakeSeed{
		bookings: []*domain.Booking{
			seedBooking("book_001", "rest_001", "user_001", domain.Slot7PM, 4, domain.StatusPending),
		},
	}
	svc := newTestService(t, seed)
	ctx := context.Background()

	// pending -> completed запрещен
	_, err := svc.UpdateStatus(ctx, "book_001", domain.StatusCompleted, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// pending -> confirmed -> completed, дальше переходов нет
	_, err = svc.UpdateStatus(ctx, "book_001", domain.StatusConfirmed, domain.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, "book_001", domain.StatusCompleted, domain.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "book_001", domain.StatusCancelled, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Неизвестный статус отклоняется
	_, err = svc.UpdateStatus(ctx, "book_001", domain.BookingStatus("archived"), domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestListByUser_MergesOverlayAndSeed(t *testing.T) {
	seed := &fakeSeed{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", TotalSeats: 40, Status: domain.RestaurantActive},
		},
		bookings: []*domain.Booking{
			seedBooking("book_001", "rest_001", "user_001", domain.Slot7PM, 4, domain.StatusConfirmed),
		},
	}
	svc := newTestService(t, seed)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.Booking{
		RestaurantID: "rest_001",
		UserID:       "user_001",
		Date:         "2026-09-16",
		TimeSlot:     domain.Slot8PM,
		Seats:        2,
		ContactName:  "Анна",
		ContactPhone: "+7 900 000-00-01",
	})
	require.NoError(t, err)

	result, err := svc.ListByUser(ctx, "user_001")
	require.NoError(t, err)
	require.Len(t, result, 2)
	// Сначала новые: локальное бронирование создано позже seed-записи
	assert.True(t, strings.HasPrefix(result[0].ID, "local-"))
	assert.Equal(t, "book_001", result[1].ID)
}

func TestGetByID_NotFoundAnywhere(t *testing.T) {
	svc := newTestService(t, &fakeSeed{})

	_, err := svc.GetByID(context.Background(), "book_404", "user_001", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
