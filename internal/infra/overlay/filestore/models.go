package filestore

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Файловый формат overlay хранилища: по одной коллекции на вид сущности,
// файл заменяется целиком при каждой записи.

type fileState struct {
	Bookings          []bookingRecord   `json:"bookings"`
	Reviews           []reviewRecord    `json:"reviews"`
	Favourites        []favouriteRecord `json:"favourites"`
	Ratings           []ratingRecord    `json:"ratings"`
	DeletedReviews    []string          `json:"deletedReviews"`
	DeletedFavourites []string          `json:"deletedFavourites"`
}

func emptyState() *fileState {
	return &fileState{
		Bookings:          []bookingRecord{},
		Reviews:           []reviewRecord{},
		Favourites:        []favouriteRecord{},
		Ratings:           []ratingRecord{},
		DeletedReviews:    []string{},
		DeletedFavourites: []string{},
	}
}

type bookingRecord struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurantId"`
	UserID          string    `json:"userId"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"timeSlot"`
	Seats           int       `json:"seats"`
	Status          string    `json:"status"`
	ContactName     string    `json:"contactName"`
	ContactPhone    string    `json:"contactPhone"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func bookingToRecord(b *domain.Booking) bookingRecord {
	return bookingRecord{
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
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r bookingRecord) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:              r.ID,
		RestaurantID:    r.RestaurantID,
		UserID:          r.UserID,
		Date:            r.Date,
		TimeSlot:        domain.TimeSlot(r.TimeSlot),
		Seats:           r.Seats,
		Status:          domain.BookingStatus(r.Status),
		ContactName:     r.ContactName,
		ContactPhone:    r.ContactPhone,
		SpecialRequests: r.SpecialRequests,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type reviewRecord struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	UserID       string    `json:"userId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

func reviewToRecord(r *domain.Review) reviewRecord {
	return reviewRecord{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		UserID:       r.UserID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

func (r reviewRecord) toDomain() *domain.Review {
	return &domain.Review{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		UserID:       r.UserID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

type favouriteRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	RestaurantID string    `json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func favouriteToRecord(f *domain.Favourite) favouriteRecord {
	return favouriteRecord{
		ID:           f.ID,
		UserID:       f.UserID,
		RestaurantID: f.RestaurantID,
		CreatedAt:    f.CreatedAt,
	}
}

func (r favouriteRecord) toDomain() *domain.Favourite {
	return &domain.Favourite{
		ID:           r.ID,
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
		CreatedAt:    r.CreatedAt,
	}
}

type ratingRecord struct {
	RestaurantID string  `json:"restaurantId"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
}

func ratingToRecord(p *domain.RatingProjection) ratingRecord {
	return ratingRecord{
		RestaurantID: p.RestaurantID,
		Rating:       p.Rating,
		TotalReviews: p.TotalReviews,
	}
}

func (r ratingRecord) toDomain() *domain.RatingProjection {
	return &domain.RatingProjection{
		RestaurantID: r.RestaurantID,
		Rating:       r.Rating,
		TotalReviews: r.TotalReviews,
	}
}
