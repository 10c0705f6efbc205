package get_reviews

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	UserID       string `json:"userId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ListReviewsResponse обертка списка отзывов
type ListReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID,
		RestaurantID: review.RestaurantID,
		UserID:       review.UserID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt.Format(time.RFC3339),
	}
}
