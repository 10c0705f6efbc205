package get_user_bookings

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	RestaurantID    string  `json:"restaurantId"`
	UserID          string  `json:"userId"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"timeSlot"`
	Seats           int     `json:"seats"`
	Status          string  `json:"status"`
	ContactName     string  `json:"contactName"`
	ContactPhone    string  `json:"contactPhone"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ListBookingsResponse обертка списка бронирований
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		RestaurantID:    b.RestaurantID,
		UserID:          b.UserID,
		Date:            b.Date,
		TimeSlot:        string(b.TimeSlot),
		Seats:           b.Seats,
		Status:          string(b.Status),
		ContactName:     b.ContactName,
		ContactPhone:    b.ContactPhone,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}
