package update_booking_status

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	UserID       string `json:"userId"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
	Seats        int    `json:"seats"`
	Status       string `json:"status"`
	UpdatedAt    string `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		RestaurantID: b.RestaurantID,
		UserID:       b.UserID,
		Date:         b.Date,
		TimeSlot:     string(b.TimeSlot),
		Seats:        b.Seats,
		Status:       string(b.Status),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
