package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	getAvailability "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_availability"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidQuery        = "некорректные параметры запроса, ожидаются date и timeSlot"
	msgNotFound            = "ресторан не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/availability?date=YYYY-MM-DD&timeSlot=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["restaurantId"]
	if restaurantID == "" {
		h.logger.Warn("GET /restaurants/{id}/availability - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := r.URL.Query()
	date := query.Get("date")
	timeSlot := query.Get("timeSlot")
	if date == "" || timeSlot == "" {
		h.logger.Warn("GET /restaurants/{id}/availability - Missing query params: restaurant_id=%s", restaurantID)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		RestaurantID: restaurantID,
		Date:         date,
		TimeSlot:     domain.TimeSlot(timeSlot),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/availability - Invalid input: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getAvailability.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/availability - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/availability - Failed to get availability: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
