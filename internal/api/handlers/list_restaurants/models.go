package list_restaurants

import (
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// RestaurantResponse HTTP response model
type RestaurantResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	OpeningTime  string  `json:"openingTime"`
	ClosingTime  string  `json:"closingTime"`
	TotalSeats   int     `json:"totalSeats"`
	PriceRange   string  `json:"priceRange"`
	Status       string  `json:"status"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
}

// ListRestaurantsResponse обертка списка ресторанов
type ListRestaurantsResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(r *domain.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		Address:      r.Address,
		City:         r.City,
		OpeningTime:  r.OpeningTime,
		ClosingTime:  r.ClosingTime,
		TotalSeats:   r.TotalSeats,
		PriceRange:   r.PriceRange,
		Status:       string(r.Status),
		Rating:       r.Rating,
		TotalReviews: r.TotalReviews,
	}
}
