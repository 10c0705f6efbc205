package seed

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Файловый формат встроенного датасета. Повторяет wire-формат платформы,
// чтобы seed-записи были репрезентационно совместимы с удаленными.

type datasetFile struct {
	Restaurants []restaurantRecord `json:"restaurants"`
	MenuItems   []menuItemRecord   `json:"menuItems"`
	Bookings    []bookingRecord    `json:"bookings"`
	Reviews     []reviewRecord     `json:"reviews"`
	Favourites  []favouriteRecord  `json:"favourites"`
	Users       []userRecord       `json:"users"`
}

type restaurantRecord struct {
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

func (r restaurantRecord) toDomain() domain.Restaurant {
	return domain.Restaurant{
		ID:           r.ID,
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		Address:      r.Address,
		City:         r.City,
		OpeningTime:  r.OpeningTime,
		ClosingTime:  r.ClosingTime,
		TotalSeats:   r.TotalSeats,
		PriceRange:   r.PriceRange,
		Rating:       r.Rating,
		TotalReviews: r.TotalReviews,
		Status:       domain.RestaurantStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type menuItemRecord struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (m menuItemRecord) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Price:        m.Price,
		Category:     domain.MenuCategory(m.Category),
		Available:    m.Available,
		CreatedAt:    m.CreatedAt,
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

func (b bookingRecord) toDomain() domain.Booking {
	return domain.Booking{
		ID:              b.ID,
		RestaurantID:    b.RestaurantID,
		UserID:          b.UserID,
		Date:            b.Date,
		TimeSlot:        domain.TimeSlot(b.TimeSlot),
		Seats:           b.Seats,
		Status:          domain.BookingStatus(b.Status),
		ContactName:     b.ContactName,
		ContactPhone:    b.ContactPhone,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
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

func (r reviewRecord) toDomain() domain.Review {
	return domain.Review{
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

func (f favouriteRecord) toDomain() domain.Favourite {
	return domain.Favourite{
		ID:           f.ID,
		UserID:       f.UserID,
		RestaurantID: f.RestaurantID,
		CreatedAt:    f.CreatedAt,
	}
}

type userRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u userRecord) toDomain() domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      domain.Role(u.Role),
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
