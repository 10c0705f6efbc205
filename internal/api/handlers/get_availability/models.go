package get_availability

import (
	getAvailability "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RestaurantID string `json:"restaurantId"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
	Available    int    `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) AvailabilityResponse {
	return AvailabilityResponse{
		RestaurantID: resp.RestaurantID,
		Date:         resp.Date,
		TimeSlot:     string(resp.TimeSlot),
		Available:    resp.Available,
	}
}
