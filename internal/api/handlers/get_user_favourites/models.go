package get_user_favourites

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// FavouriteResponse HTTP response model
type FavouriteResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	RestaurantID string `json:"restaurantId"`
	CreatedAt    string `json:"createdAt"`
}

// ListFavouritesResponse обертка списка избранного
type ListFavouritesResponse struct {
	Favourites []FavouriteResponse `json:"favourites"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(f *domain.Favourite) FavouriteResponse {
	return FavouriteResponse{
		ID:           f.ID,
		UserID:       f.UserID,
		RestaurantID: f.RestaurantID,
		CreatedAt:    f.CreatedAt.Format(time.RFC3339),
	}
}
