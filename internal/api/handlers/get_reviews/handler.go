package get_reviews

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reviews"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgNotFound            = "ресторан не найден"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["restaurantId"]
	if restaurantID == "" {
		h.logger.Warn("GET /restaurants/{id}/reviews - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	result, err := h.service.ListByRestaurant(r.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/reviews - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/reviews - Failed to list reviews: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := ListReviewsResponse{Reviews: make([]ReviewResponse, 0, len(result))}
	for _, review := range result {
		response.Reviews = append(response.Reviews, FromDomain(review))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
