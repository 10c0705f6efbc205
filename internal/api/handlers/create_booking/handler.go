package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidInput           = "некорректные данные бронирования"
	msgInvalidDate            = "некорректная дата бронирования"
	msgMissingUserID          = "отсутствует ID пользователя"
	msgRestaurantNotFound     = "ресторан не найден"
	msgRestaurantNotAvailable = "ресторан не принимает бронирования"
	msgNotEnoughSeats         = "недостаточно свободных мест на выбранный слот"
	msgUnauthorized           = "требуется повторная авторизация"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		var capacityErr *createBooking.CapacityError

		switch {
		case errors.As(err, &capacityErr):
			h.logger.Warn("POST /bookings - Not enough seats: user_id=%s, restaurant_id=%s, requested=%d, available=%d",
				userID, req.RestaurantID, capacityErr.Requested, capacityErr.Available)
			handlers.RespondJSON(w, http.StatusConflict, CapacityErrorResponse{
				Message:   fmt.Sprintf("%s: свободно %d", msgNotEnoughSeats, capacityErr.Available),
				Requested: capacityErr.Requested,
				Available: capacityErr.Available,
			})

		case errors.Is(err, createBooking.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings - Restaurant not found: restaurant_id=%s", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createBooking.ErrRestaurantNotAvailable):
			h.logger.Warn("POST /bookings - Restaurant not available: restaurant_id=%s", req.RestaurantID)
			handlers.RespondConflict(w, msgRestaurantNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: user_id=%s, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, restaurant_id=%s, error=%v",
				userID, req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, restaurant_id=%s",
		result.ID, userID, req.RestaurantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
