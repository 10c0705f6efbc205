package domain

import "time"

// RestaurantStatus represents the moderation status of a restaurant
type RestaurantStatus string

const (
	RestaurantActive  RestaurantStatus = "active"
	RestaurantPending RestaurantStatus = "pending"
	RestaurantBlocked RestaurantStatus = "blocked"
)

// MenuCategory represents the menu section an item belongs to
type MenuCategory string

const (
	CategoryAppetizer  MenuCategory = "Appetizer"
	CategoryMainCourse MenuCategory = "MainCourse"
	CategoryDessert    MenuCategory = "Dessert"
	CategoryDrinks     MenuCategory = "Drinks"
)

// Restaurant represents a restaurant in the catalog
type Restaurant struct {
	ID          string
	Name        string
	Cuisine     string
	Address     string
	City        string
	OpeningTime string // "11:00 AM"
	ClosingTime string // "10:00 PM"
	TotalSeats  int    // capacity, constant once created
	PriceRange  string // "$", "$$", "$$$"
	Status      RestaurantStatus

	// Derived fields, owned by the rating aggregation - never written directly
	Rating       float64
	TotalReviews int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the restaurant accepts bookings
func (r *Restaurant) IsActive() bool {
	return r.Status == RestaurantActive
}

// RecordID implements the merge identity used by the fallback resolver
func (r *Restaurant) RecordID() string { return r.ID }

// RecordCreatedAt implements the merge ordering used by the fallback resolver
func (r *Restaurant) RecordCreatedAt() time.Time { return r.CreatedAt }

// MenuItem represents a single dish on a restaurant menu
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Price        float64
	Category     MenuCategory
	Available    bool

	CreatedAt time.Time
}

// RecordID implements the merge identity used by the fallback resolver
func (m *MenuItem) RecordID() string { return m.ID }

// RecordCreatedAt implements the merge ordering used by the fallback resolver
func (m *MenuItem) RecordCreatedAt() time.Time { return m.CreatedAt }
