package get_menu

import (
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// MenuItemResponse HTTP response model
type MenuItemResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Available    bool    `json:"available"`
}

// MenuResponse обертка списка позиций меню
type MenuResponse struct {
	Items []MenuItemResponse `json:"items"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Price:        item.Price,
		Category:     string(item.Category),
		Available:    item.Available,
	}
}
