package handler

import (
	"net/http"

	"github.com/aidar/greenlink/internal/service"
)

// UserHandler обрабатывает эндпоинты пользователей
type UserHandler struct {
	authService       *service.AuthService
	membershipService *service.MembershipService
}

// NewUserHandler создает новый UserHandler
func NewUserHandler(authService *service.AuthService, membershipService *service.MembershipService) *UserHandler {
	return &UserHandler{
		authService:       authService,
		membershipService: membershipService,
	}
}

// GetUser обрабатывает GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}

// ListUserClubs обрабатывает GET /api/users/{id}/clubs
func (h *UserHandler) ListUserClubs(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	memberships, err := h.membershipService.ListUserClubs(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, memberships)
}
