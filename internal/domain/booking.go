package domain

import "time"

// BookingStatus represents the status of a table booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for one of the four known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// allowedTransitions таблица допустимых переходов статусов бронирования
// pending -> confirmed -> completed (happy path)
// pending -> cancelled, confirmed -> cancelled
// completed и cancelled - терминальные статусы
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Booking represents a table reservation in a restaurant
type Booking struct {
	ID           string
	RestaurantID string
	UserID       string
	Date         string   // YYYY-MM-DD
	TimeSlot     TimeSlot // one of the enumerated slots
	Seats        int
	Status       BookingStatus

	// Contact data snapshot taken at creation time
	ContactName  string
	ContactPhone string

	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo returns true if the status change is permitted by the
// booking lifecycle table
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are permitted
func (b *Booking) IsTerminal() bool {
	return len(allowedTransitions[b.Status]) == 0
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// HoldsCapacity returns true if the booking consumes seats for its slot.
// Cancelled bookings released their seats; completed bookings are historical.
// A completed booking on a future slot is a tolerated data anomaly - it is
// simply not counted.
func (b *Booking) HoldsCapacity() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// RecordID implements the merge identity used by the fallback resolver
func (b *Booking) RecordID() string { return b.ID }

// RecordCreatedAt implements the merge ordering used by the fallback resolver
func (b *Booking) RecordCreatedAt() time.Time { return b.CreatedAt }

// BookingFilter фильтр для выборки бронирований
type BookingFilter struct {
	RestaurantID *string        // Фильтр по ресторану (опционально)
	UserID       *string        // Фильтр по пользователю (опционально)
	Date         *string        // Фильтр по дате (опционально)
	TimeSlot     *TimeSlot      // Фильтр по слоту (опционально)
	Status       *BookingStatus // Фильтр по статусу (опционально)
}

// Matches returns true if the booking satisfies every set filter field
func (f BookingFilter) Matches(b *Booking) bool {
	if f.RestaurantID != nil && b.RestaurantID != *f.RestaurantID {
		return false
	}
	if f.UserID != nil && b.UserID != *f.UserID {
		return false
	}
	if f.Date != nil && b.Date != *f.Date {
		return false
	}
	if f.TimeSlot != nil && b.TimeSlot != *f.TimeSlot {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	return true
}
