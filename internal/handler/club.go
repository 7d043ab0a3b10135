package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/service"
)

// ClubHandler обрабатывает эндпоинты клубов
type ClubHandler struct {
	clubService *service.ClubService
}

// NewClubHandler создает новый ClubHandler
func NewClubHandler(clubService *service.ClubService) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

// CreateClubRequest представляет тело запроса на создание клуба
type CreateClubRequest struct {
	Name        string `json:"name" validate:"required,max=100" msg:"Club name is required"`
	Description string `json:"description" validate:"max=1000"`
	Location    string `json:"location" validate:"max=100"`
	OwnerID     int64  `json:"ownerId" validate:"required,gt=0" msg:"ownerId is required"`
}

// ClubResponse представляет клуб с владельцем и счетчиками
type ClubResponse struct {
	*domain.Club
	Owner domain.UserRef `json:"owner"`
	domain.ClubCounts
}

func newClubResponse(details *domain.ClubDetails) ClubResponse {
	return ClubResponse{
		Club:       details.Club,
		Owner:      details.Owner,
		ClubCounts: details.Counts,
	}
}

// CreateClub обрабатывает POST /api/clubs
func (h *ClubHandler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var req CreateClubRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.clubService.CreateClub(r.Context(), &domain.Club{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newClubResponse(details))
}

// ListClubs обрабатывает GET /api/clubs?name=...&ownerId=...
func (h *ClubHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ownerID, err := intQuery(r, "ownerId")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	clubs, err := h.clubService.ListClubs(r.Context(), domain.ClubFilter{
		Name:    r.URL.Query().Get("name"),
		OwnerID: ownerID,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, clubs)
}

// GetClub обрабатывает GET /api/clubs/{id}
func (h *ClubHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.clubService.GetClub(r.Context(), clubID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newClubResponse(details))
}

// GetClubByCode обрабатывает GET /api/clubs/code/{clubCode}
func (h *ClubHandler) GetClubByCode(w http.ResponseWriter, r *http.Request) {
	details, err := h.clubService.GetClubByCode(r.Context(), chi.URLParam(r, "clubCode"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newClubResponse(details))
}

// DeleteClub обрабатывает DELETE /api/clubs/{id}
func (h *ClubHandler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.clubService.DeleteClub(r.Context(), clubID); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, http.StatusOK, "Club deleted")
}
