package domain

import "time"

// Rating bounds for a review
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Review represents a user review of a restaurant
type Review struct {
	ID           string
	RestaurantID string
	UserID       string
	Rating       int // [1..5]
	Comment      string
	CreatedAt    time.Time
}

// RecordID implements the merge identity used by the fallback resolver
func (r *Review) RecordID() string { return r.ID }

// RecordCreatedAt implements the merge ordering used by the fallback resolver
func (r *Review) RecordCreatedAt() time.Time { return r.CreatedAt }

// RatingProjection derived rating state of a restaurant, recomputed from the
// complete review set on every review mutation
type RatingProjection struct {
	RestaurantID string
	Rating       float64
	TotalReviews int
}
