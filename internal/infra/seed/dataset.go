package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

//go:embed seed.json
var seedJSON []byte

// Dataset неизменяемый встроенный снимок данных (Tier 2).
// Используется, когда сервис платформы недоступен. Только чтение -
// все методы возвращают копии записей.
type Dataset struct {
	restaurants []domain.Restaurant
	menuItems   []domain.MenuItem
	bookings    []domain.Booking
	reviews     []domain.Review
	favourites  []domain.Favourite
	users       []domain.User
}

// Load разбирает встроенный датасет
func Load() (*Dataset, error) {
	var file datasetFile
	if err := json.Unmarshal(seedJSON, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadDataset, err)
	}

	ds := &Dataset{
		restaurants: make([]domain.Restaurant, 0, len(file.Restaurants)),
		menuItems:   make([]domain.MenuItem, 0, len(file.MenuItems)),
		bookings:    make([]domain.Booking, 0, len(file.Bookings)),
		reviews:     make([]domain.Review, 0, len(file.Reviews)),
		favourites:  make([]domain.Favourite, 0, len(file.Favourites)),
		users:       make([]domain.User, 0, len(file.Users)),
	}

	for _, r := range file.Restaurants {
		ds.restaurants = append(ds.restaurants, r.toDomain())
	}
	for _, m := range file.MenuItems {
		ds.menuItems = append(ds.menuItems, m.toDomain())
	}
	for _, b := range file.Bookings {
		ds.bookings = append(ds.bookings, b.toDomain())
	}
	for _, r := range file.Reviews {
		ds.reviews = append(ds.reviews, r.toDomain())
	}
	for _, f := range file.Favourites {
		ds.favourites = append(ds.favourites, f.toDomain())
	}
	for _, u := range file.Users {
		ds.users = append(ds.users, u.toDomain())
	}

	return ds, nil
}

// Restaurants возвращает все рестораны датасета
func (d *Dataset) Restaurants() []*domain.Restaurant {
	result := make([]*domain.Restaurant, len(d.restaurants))
	for i := range d.restaurants {
		r := d.restaurants[i]
		result[i] = &r
	}
	return result
}

// RestaurantByID возвращает ресторан по ID
func (d *Dataset) RestaurantByID(id string) (*domain.Restaurant, bool) {
	for i := range d.restaurants {
		if d.restaurants[i].ID == id {
			r := d.restaurants[i]
			return &r, true
		}
	}
	return nil, false
}

// MenuByRestaurant возвращает меню ресторана
func (d *Dataset) MenuByRestaurant(restaurantID string) []*domain.MenuItem {
	result := make([]*domain.MenuItem, 0)
	for i := range d.menuItems {
		if d.menuItems[i].RestaurantID == restaurantID {
			m := d.menuItems[i]
			result = append(result, &m)
		}
	}
	return result
}

// Bookings возвращает бронирования, удовлетворяющие фильтру
func (d *Dataset) Bookings(filter domain.BookingFilter) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for i := range d.bookings {
		b := d.bookings[i]
		if filter.Matches(&b) {
			result = append(result, &b)
		}
	}
	return result
}

// BookingByID возвращает бронирование по ID
func (d *Dataset) BookingByID(id string) (*domain.Booking, bool) {
	for i := range d.bookings {
		if d.bookings[i].ID == id {
			b := d.bookings[i]
			return &b, true
		}
	}
	return nil, false
}

// ReviewsByRestaurant возвращает отзывы ресторана
func (d *Dataset) ReviewsByRestaurant(restaurantID string) []*domain.Review {
	result := make([]*domain.Review, 0)
	for i := range d.reviews {
		if d.reviews[i].RestaurantID == restaurantID {
			r := d.reviews[i]
			result = append(result, &r)
		}
	}
	return result
}

// ReviewByID возвращает отзыв по ID
func (d *Dataset) ReviewByID(id string) (*domain.Review, bool) {
	for i := range d.reviews {
		if d.reviews[i].ID == id {
			r := d.reviews[i]
			return &r, true
		}
	}
	return nil, false
}

// FavouritesByUser возвращает избранное пользователя
func (d *Dataset) FavouritesByUser(userID string) []*domain.Favourite {
	result := make([]*domain.Favourite, 0)
	for i := range d.favourites {
		if d.favourites[i].UserID == userID {
			f := d.favourites[i]
			result = append(result, &f)
		}
	}
	return result
}

// UserByID возвращает пользователя по ID
func (d *Dataset) UserByID(id string) (*domain.User, bool) {
	for i := range d.users {
		if d.users[i].ID == id {
			u := d.users[i]
			return &u, true
		}
	}
	return nil, false
}
