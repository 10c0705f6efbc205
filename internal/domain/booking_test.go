package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled stays cancelled", StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
}

func TestBooking_HoldsCapacity(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).HoldsCapacity())
	assert.True(t, (&Booking{Status: StatusConfirmed}).HoldsCapacity())
	assert.False(t, (&Booking{Status: StatusCompleted}).HoldsCapacity())
	assert.False(t, (&Booking{Status: StatusCancelled}).HoldsCapacity())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("unknown").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBookingFilter_Matches(t *testing.T) {
	restaurantID := "rest_001"
	userID := "user_001"
	date := "2026-09-15"
	slot := Slot7PM
	status := StatusPending

	booking := &Booking{
		ID:           "book_001",
		RestaurantID: restaurantID,
		UserID:       userID,
		Date:         date,
		TimeSlot:     slot,
		Status:       status,
		CreatedAt:    time.Now(),
	}

	assert.True(t, BookingFilter{}.Matches(booking))
	assert.True(t, BookingFilter{RestaurantID: &restaurantID, Date: &date, TimeSlot: &slot}.Matches(booking))
	assert.True(t, BookingFilter{UserID: &userID, Status: &status}.Matches(booking))

	otherUser := "user_002"
	assert.False(t, BookingFilter{UserID: &otherUser}.Matches(booking))

	otherSlot := Slot11AM
	assert.False(t, BookingFilter{RestaurantID: &restaurantID, TimeSlot: &otherSlot}.Matches(booking))
}
