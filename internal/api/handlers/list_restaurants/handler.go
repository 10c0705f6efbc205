package list_restaurants

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
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

// Handle GET /api/v1/restaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /restaurants - Failed to list restaurants: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := ListRestaurantsResponse{
		Restaurants: make([]RestaurantResponse, 0, len(restaurants)),
	}
	for _, restaurant := range restaurants {
		response.Restaurants = append(response.Restaurants, FromDomain(restaurant))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
