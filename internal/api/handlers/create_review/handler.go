package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные отзыва"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRestaurantNotFound = "ресторан не найден"
	msgUnauthorized       = "требуется повторная авторизация"
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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain(userID))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reviews.ErrRestaurantNotFound):
			h.logger.Warn("POST /reviews - Restaurant not found: restaurant_id=%s", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, reviews.ErrUnauthorized):
			h.logger.Warn("POST /reviews - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /reviews - Failed to create review: user_id=%s, restaurant_id=%s, error=%v",
				userID, req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created successfully: review_id=%s, user_id=%s, restaurant_id=%s",
		created.ID, userID, req.RestaurantID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}
