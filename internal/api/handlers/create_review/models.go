package create_review

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	RestaurantID string `json:"restaurantId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	UserID       string `json:"userId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateReviewRequest) ToDomain(userID string) *domain.Review {
	return &domain.Review{
		RestaurantID: r.RestaurantID,
		UserID:       userID,
		Rating:       r.Rating,
		Comment:      r.Comment,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(review *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:           review.ID,
		RestaurantID: review.RestaurantID,
		UserID:       review.UserID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt.Format(time.RFC3339),
	}
}
