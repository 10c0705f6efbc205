package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgUnauthorized  = "требуется повторная авторизация"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetUserID := vars["userId"]
	if targetUserID == "" {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID in path")
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	// Свою историю видит каждый, чужую - только менеджер/администратор
	if targetUserID != actorID && !role.CanManageBookings() {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: target=%s, actor=%s", targetUserID, actorID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.ListByUser(r.Context(), targetUserID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnauthorized):
			h.logger.Warn("GET /users/{id}/bookings - Unauthorized: user_id=%s", actorID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to list bookings: user_id=%s, error=%v",
				targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := ListBookingsResponse{Bookings: make([]BookingResponse, 0, len(result))}
	for _, booking := range result {
		response.Bookings = append(response.Bookings, FromDomain(booking))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
