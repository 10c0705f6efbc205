package get_availability

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/bookings"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubBookingService struct {
	available int
	err       error
}

func (s *stubBookingService) AvailableSeats(ctx context.Context, restaurantID string, date string, slot domain.TimeSlot) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.available, nil
}

func TestExecute_ReturnsAvailability(t *testing.T) {
	uc := NewUseCase(&stubBookingService{available: 17}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: "rest_001",
		Date:         "2026-09-15",
		TimeSlot:     domain.Slot7PM,
	})

	require.NoError(t, err)
	assert.Equal(t, "rest_001", resp.RestaurantID)
	assert.Equal(t, "2026-09-15", resp.Date)
	assert.Equal(t, domain.Slot7PM, resp.TimeSlot)
	assert.Equal(t, 17, resp.Available)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&stubBookingService{available: 10}, nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing restaurant", &Request{Date: "2026-09-15", TimeSlot: domain.Slot7PM}},
		{"bad date", &Request{RestaurantID: "rest_001", Date: "15/09/2026", TimeSlot: domain.Slot7PM}},
		{"unknown slot", &Request{RestaurantID: "rest_001", Date: "2026-09-15", TimeSlot: "11:00 PM"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := NewUseCase(&stubBookingService{err: fmt.Errorf("%w: nope", bookings.ErrRestaurantNotFound)}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: "rest_404",
		Date:         "2026-09-15",
		TimeSlot:     domain.Slot7PM,
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_ServiceFailure(t *testing.T) {
	uc := NewUseCase(&stubBookingService{err: bookings.ErrInternal}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: "rest_001",
		Date:         "2026-09-15",
		TimeSlot:     domain.Slot7PM,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
