package add_favourite

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
	msgAlreadyExists      = "ресторан уже в избранном"
	msgUnauthorized       = "требуется повторная авторизация"
)

// AddFavouriteRequest HTTP request model
type AddFavouriteRequest struct {
	RestaurantID string `json:"restaurantId"`
}

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

// Handle POST /api/v1/favourites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /favourites - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddFavouriteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.RestaurantID == "" {
		h.logger.Warn("POST /favourites - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Add(r.Context(), userID, req.RestaurantID); err != nil {
		switch {
		case errors.Is(err, favourites.ErrRestaurantNotFound):
			h.logger.Warn("POST /favourites - Restaurant not found: restaurant_id=%s", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, favourites.ErrAlreadyExists):
			h.logger.Warn("POST /favourites - Already exists: user_id=%s, restaurant_id=%s", userID, req.RestaurantID)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, favourites.ErrUnauthorized):
			h.logger.Warn("POST /favourites - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /favourites - Failed to add favourite: user_id=%s, restaurant_id=%s, error=%v",
				userID, req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /favourites - Favourite added: user_id=%s, restaurant_id=%s", userID, req.RestaurantID)
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
