package get_menu

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/service/catalog"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgNotFound            = "ресторан не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["restaurantId"]
	if restaurantID == "" {
		h.logger.Warn("GET /restaurants/{id}/menu - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	items, err := h.service.GetMenu(r.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/menu - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/menu - Failed to get menu: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := MenuResponse{Items: make([]MenuItemResponse, 0, len(items))}
	for _, item := range items {
		response.Items = append(response.Items, FromDomain(item))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
