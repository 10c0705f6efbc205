package remove_favourite

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/favourites"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgUnauthorized        = "требуется повторная авторизация"
)

type Handler struct {
	service FavouriteService
	logger  Logger
}

func NewHandler(service FavouriteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/favourites/{restaurantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["restaurantId"]
	if restaurantID == "" {
		h.logger.Warn("DELETE /favourites/{id} - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /favourites/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Remove(r.Context(), userID, restaurantID); err != nil {
		switch {
		case errors.Is(err, favourites.ErrUnauthorized):
			h.logger.Warn("DELETE /favourites/{id} - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("DELETE /favourites/{id} - Failed to remove favourite: user_id=%s, restaurant_id=%s, error=%v",
				userID, restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /favourites/{id} - Favourite removed: user_id=%s, restaurant_id=%s", userID, restaurantID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
