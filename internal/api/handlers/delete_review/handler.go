package delete_review

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reviews"
)

const (
	msgInvalidReviewID = "некорректный ID отзыва"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotFound        = "отзыв не найден"
	msgForbidden       = "доступ запрещен"
	msgUnauthorized    = "требуется повторная авторизация"
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

// Handle DELETE /api/v1/reviews/{reviewId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reviewID := vars["reviewId"]
	if reviewID == "" {
		h.logger.Warn("DELETE /reviews/{id} - Missing review ID")
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reviews/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	if err := h.service.Delete(r.Context(), reviewID, userID, role); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("DELETE /reviews/{id} - Review not found: review_id=%s", reviewID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reviews.ErrForbidden):
			h.logger.Warn("DELETE /reviews/{id} - Access denied: review_id=%s, user_id=%s", reviewID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reviews.ErrUnauthorized):
			h.logger.Warn("DELETE /reviews/{id} - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("DELETE /reviews/{id} - Failed to delete review: review_id=%s, error=%v", reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reviews/{id} - Review deleted successfully: review_id=%s, user_id=%s", reviewID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
