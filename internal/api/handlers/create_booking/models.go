package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	createBooking "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID    string  `json:"restaurantId"`
	Date            string  `json:"date"` // "2026-09-15"
	TimeSlot        string  `json:"timeSlot"`
	Seats           int     `json:"seats"`
	ContactName     string  `json:"contactName"`
	ContactPhone    string  `json:"contactPhone"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

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

// CapacityErrorResponse тело ошибки нехватки мест: к сообщению
// прикладывается фактический остаток
type CapacityErrorResponse struct {
	Message   string `json:"message"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) *createBooking.Request {
	return &createBooking.Request{
		UserID:          userID,
		RestaurantID:    r.RestaurantID,
		Date:            r.Date,
		TimeSlot:        domain.TimeSlot(r.TimeSlot),
		Seats:           r.Seats,
		ContactName:     r.ContactName,
		ContactPhone:    r.ContactPhone,
		SpecialRequests: r.SpecialRequests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		RestaurantID:    resp.RestaurantID,
		UserID:          resp.UserID,
		Date:            resp.Date,
		TimeSlot:        string(resp.TimeSlot),
		Seats:           resp.Seats,
		Status:          resp.Status,
		ContactName:     resp.ContactName,
		ContactPhone:    resp.ContactPhone,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
