package toggle_favourite

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/favourites"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRestaurantNotFound = "ресторан не найден"
	msgUnauthorized       = "требуется повторная авторизация"
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

// Handle POST /api/v1/favourites/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /favourites/toggle - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ToggleFavouriteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.RestaurantID == "" {
		h.logger.Warn("POST /favourites/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	isFavourite, err := h.service.Toggle(r.Context(), userID, req.RestaurantID)
	if err != nil {
		switch {
		case errors.Is(err, favourites.ErrRestaurantNotFound):
			h.logger.Warn("POST /favourites/toggle - Restaurant not found: restaurant_id=%s", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, favourites.ErrUnauthorized):
			h.logger.Warn("POST /favourites/toggle - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /favourites/toggle - Failed to toggle favourite: user_id=%s, restaurant_id=%s, error=%v",
				userID, req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /favourites/toggle - Favourite toggled: user_id=%s, restaurant_id=%s, is_favourite=%t",
		userID, req.RestaurantID, isFavourite)
	handlers.RespondJSON(w, http.StatusOK, ToggleFavouriteResponse{
		RestaurantID: req.RestaurantID,
		IsFavourite:  isFavourite,
	})
}
