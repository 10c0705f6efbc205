package get_restaurant_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/bookings"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidStatus       = "некорректный статус бронирования"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgForbidden           = "доступ запрещен"
	msgUnauthorized        = "требуется повторная авторизация"
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

// Handle GET /api/v1/restaurants/{restaurantId}/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["restaurantId"]
	if restaurantID == "" {
		h.logger.Warn("GET /restaurants/{id}/bookings - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /restaurants/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	var statusFilter *domain.BookingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		if !status.IsValid() {
			h.logger.Warn("GET /restaurants/{id}/bookings - Invalid status filter: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		statusFilter = &status
	}

	result, err := h.service.ListByRestaurant(r.Context(), restaurantID, statusFilter, role)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrForbidden):
			h.logger.Warn("GET /restaurants/{id}/bookings - Access denied: restaurant_id=%s, user_id=%s, role=%s",
				restaurantID, userID, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrUnauthorized):
			h.logger.Warn("GET /restaurants/{id}/bookings - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /restaurants/{id}/bookings - Failed to list bookings: restaurant_id=%s, error=%v",
				restaurantID, err)
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
