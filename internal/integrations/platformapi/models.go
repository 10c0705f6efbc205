package platformapi

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// RestaurantDTO модель ресторана из API платформы
type RestaurantDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Cuisine      string    `json:"cuisine"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	OpeningTime  string    `json:"openingTime"`
	ClosingTime  string    `json:"closingTime"`
	TotalSeats   int       `json:"totalSeats"`
	PriceRange   string    `json:"priceRange"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"totalReviews"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToDomain конвертирует DTO в domain модель
func (d *RestaurantDTO) ToDomain() *domain.Restaurant {
	return &domain.Restaurant{
		ID:           d.ID,
		Name:         d.Name,
		Cuisine:      d.Cuisine,
		Address:      d.Address,
		City:         d.City,
		OpeningTime:  d.OpeningTime,
		ClosingTime:  d.ClosingTime,
		TotalSeats:   d.TotalSeats,
		PriceRange:   d.PriceRange,
		Rating:       d.Rating,
		TotalReviews: d.TotalReviews,
		Status:       domain.RestaurantStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// MenuItemDTO модель позиции меню из API платформы
type MenuItemDTO struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToDomain конвертирует DTO в domain модель
func (d *MenuItemDTO) ToDomain() *domain.MenuItem {
	return &domain.MenuItem{
		ID:           d.ID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		Price:        d.Price,
		Category:     domain.MenuCategory(d.Category),
		Available:    d.Available,
		CreatedAt:    d.CreatedAt,
	}
}

// BookingDTO модель бронирования из API платформы
type BookingDTO struct {
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

// ToDomain конвертирует DTO в domain модель
func (d *BookingDTO) ToDomain() *domain.Booking {
	return &domain.Booking{
		ID:              d.ID,
		RestaurantID:    d.RestaurantID,
		UserID:          d.UserID,
		Date:            d.Date,
		TimeSlot:        domain.TimeSlot(d.TimeSlot),
		Seats:           d.Seats,
		Status:          domain.BookingStatus(d.Status),
		ContactName:     d.ContactName,
		ContactPhone:    d.ContactPhone,
		SpecialRequests: d.SpecialRequests,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// FromDomainBooking конвертирует domain модель в DTO для отправки платформе
func FromDomainBooking(b *domain.Booking) *BookingDTO {
	return &BookingDTO{
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

// ReviewDTO модель отзыва из API платформы
type ReviewDTO struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	UserID       string    `json:"userId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToDomain конвертирует DTO в domain модель
func (d *ReviewDTO) ToDomain() *domain.Review {
	return &domain.Review{
		ID:           d.ID,
		RestaurantID: d.RestaurantID,
		UserID:       d.UserID,
		Rating:       d.Rating,
		Comment:      d.Comment,
		CreatedAt:    d.CreatedAt,
	}
}

// FromDomainReview конвертирует domain модель в DTO для отправки платформе
func FromDomainReview(r *domain.Review) *ReviewDTO {
	return &ReviewDTO{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		UserID:       r.UserID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

// FavouriteDTO модель избранного из API платформы
type FavouriteDTO struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	RestaurantID string    `json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToDomain конвертирует DTO в domain модель
func (d *FavouriteDTO) ToDomain() *domain.Favourite {
	return &domain.Favourite{
		ID:           d.ID,
		UserID:       d.UserID,
		RestaurantID: d.RestaurantID,
		CreatedAt:    d.CreatedAt,
	}
}

// AvailabilityDTO ответ платформы на запрос доступности слота
type AvailabilityDTO struct {
	RestaurantID string `json:"restaurantId"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
	Available    int    `json:"available"`
	TotalSeats   int    `json:"totalSeats"`
}

// ToggleFavouriteDTO ответ платформы на переключение избранного
type ToggleFavouriteDTO struct {
	IsFavourite bool `json:"isFavourite"`
}

// ErrorResponse модель ошибки от платформы
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
