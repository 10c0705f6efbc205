package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/keymutex"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// memBookingService хранит бронирования в памяти и намеренно не
// синхронизирует проверку и запись - сериализацию обеспечивает use case
type memBookingService struct {
	mu         sync.Mutex
	totalSeats int
	bookings   []*domain.Booking
	nextID     int
}

func (s *memBookingService) AvailableSeats(ctx context.Context, restaurantID string, date string, slot domain.TimeSlot) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booked := 0
	for _, b := range s.bookings {
		if b.RestaurantID == restaurantID && b.Date == date && b.TimeSlot == slot && b.HoldsCapacity() {
			booked += b.Seats
		}
	}
	available := s.totalSeats - booked
	if available < 0 {
		available = 0
	}
	return available, nil
}

func (s *memBookingService) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	created := *booking
	created.ID = fmt.Sprintf("book_%03d", s.nextID)
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.bookings = append(s.bookings, &created)
	return &created, nil
}

type fakeCatalog struct {
	restaurants map[string]*domain.Restaurant
}

func (f *fakeCatalog) GetByID(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	r, ok := f.restaurants[restaurantID]
	if !ok {
		return nil, fmt.Errorf("restaurant not found")
	}
	copied := *r
	return &copied, nil
}

func newTestUseCase(totalSeats int) (*UseCase, *memBookingService) {
	svc := &memBookingService{totalSeats: totalSeats}
	cat := &fakeCatalog{
		restaurants: map[string]*domain.Restaurant{
			"rest_001": {ID: "rest_001", TotalSeats: totalSeats, Status: domain.RestaurantActive},
			"rest_002": {ID: "rest_002", TotalSeats: totalSeats, Status: domain.RestaurantPending},
		},
	}
	uc := NewUseCase(svc, cat, keymutex.New(), nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc, svc
}

func validRequest() *Request {
	return &Request{
		UserID:       "user_001",
		RestaurantID: "rest_001",
		Date:         "2026-09-15",
		TimeSlot:     domain.Slot7PM,
		Seats:        4,
		ContactName:  "Анна",
		ContactPhone: "+7 900 000-00-01",
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	uc, _ := newTestUseCase(40)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 4, resp.Seats)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(40)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"zero seats", func(r *Request) { r.Seats = 0 }, ErrInvalidInput},
		{"negative seats", func(r *Request) { r.Seats = -2 }, ErrInvalidInput},
		{"unknown slot", func(r *Request) { r.TimeSlot = "5:00 PM" }, ErrInvalidInput},
		{"bad date format", func(r *Request) { r.Date = "15.09.2026" }, ErrInvalidInput},
		{"past date", func(r *Request) { r.Date = "2026-08-30" }, ErrInvalidDate},
		{"missing contact name", func(r *Request) { r.ContactName = "  " }, ErrInvalidInput},
		{"missing contact phone", func(r *Request) { r.ContactPhone = "" }, ErrInvalidInput},
		{"missing user", func(r *Request) { r.UserID = "" }, ErrInvalidInput},
		{"oversized special requests", func(r *Request) {
			long := make([]byte, domain.MaxSpecialRequestsLength+1)
			r.SpecialRequests = ptr.Ptr(string(long))
		}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_TodayIsBookable(t *testing.T) {
	uc, _ := newTestUseCase(40)

	req := validRequest()
	req.Date = "2026-09-01" // дата "сегодня" для фиксированного времени

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_RestaurantNotActive(t *testing.T) {
	uc, _ := newTestUseCase(40)

	req := validRequest()
	req.RestaurantID = "rest_002"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRestaurantNotAvailable)
}

func TestExecute_CapacityExceededCarriesAvailable(t *testing.T) {
	uc, _ := newTestUseCase(10)
	ctx := context.Background()

	first := validRequest()
	first.Seats = 7
	_, err := uc.Execute(ctx, first)
	require.NoError(t, err)

	second := validRequest()
	second.Seats = 5
	_, err = uc.Execute(ctx, second)

	require.ErrorIs(t, err, ErrNotEnoughSeats)

	var capacityErr *CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 5, capacityErr.Requested)
	assert.Equal(t, 3, capacityErr.Available)
}

func TestExecute_ExactFitSucceeds(t *testing.T) {
	uc, _ := newTestUseCase(10)
	ctx := context.Background()

	first := validRequest()
	first.Seats = 6
	_, err := uc.Execute(ctx, first)
	require.NoError(t, err)

	second := validRequest()
	second.Seats = 4
	_, err = uc.Execute(ctx, second)
	assert.NoError(t, err)
}

func TestExecute_ConcurrentRequestsDoNotOverbook(t *testing.T) {
	const totalSeats = 10
	const workers = 30

	uc, svc := newTestUseCase(totalSeats)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req := validRequest()
			req.UserID = fmt.Sprintf("user_%03d", n)
			req.Seats = 1
			_, _ = uc.Execute(ctx, req)
		}(i)
	}
	wg.Wait()

	booked := 0
	for _, b := range svc.bookings {
		booked += b.Seats
	}
	assert.Equal(t, totalSeats, booked)
}
