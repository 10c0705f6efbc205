package get_user_favourites

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/favourites"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgUnauthorized  = "требуется повторная авторизация"
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

// Handle GET /api/v1/users/{userId}/favourites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetUserID := vars["userId"]
	if targetUserID == "" {
		h.logger.Warn("GET /users/{id}/favourites - Missing user ID in path")
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/favourites - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	// Чужое избранное видит только администратор
	if targetUserID != actorID && role != domain.RoleAdmin {
		h.logger.Warn("GET /users/{id}/favourites - Access denied: target=%s, actor=%s", targetUserID, actorID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.ListByUser(r.Context(), targetUserID)
	if err != nil {
		switch {
		case errors.Is(err, favourites.ErrUnauthorized):
			h.logger.Warn("GET /users/{id}/favourites - Unauthorized: user_id=%s", actorID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /users/{id}/favourites - Failed to list favourites: user_id=%s, error=%v",
				targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := ListFavouritesResponse{Favourites: make([]FavouriteResponse, 0, len(result))}
	for _, favourite := range result {
		response.Favourites = append(response.Favourites, FromDomain(favourite))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
