package toggle_favourite

// ToggleFavouriteRequest HTTP request model
type ToggleFavouriteRequest struct {
	RestaurantID string `json:"restaurantId"`
}

// ToggleFavouriteResponse HTTP response model
type ToggleFavouriteResponse struct {
	RestaurantID string `json:"restaurantId"`
	IsFavourite  bool   `json:"isFavourite"`
}
