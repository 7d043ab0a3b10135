package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/service"
)

// MembershipHandler обрабатывает эндпоинты членства в клубах и командах
type MembershipHandler struct {
	membershipService *service.MembershipService
}

// NewMembershipHandler создает новый MembershipHandler
func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// ClubMemberRequest представляет тело запроса на вступление в клуб
type ClubMemberRequest struct {
	UserID int64           `json:"userId" validate:"required,gt=0" msg:"userId is required"`
	Role   domain.ClubRole `json:"role"`
}

// UpdateRoleRequest представляет тело запроса на смену роли в клубе
type UpdateRoleRequest struct {
	Role domain.ClubRole `json:"role" validate:"required" msg:"Role is required"`
}

// TeamMemberRequest представляет тело запроса на вступление в команду
type TeamMemberRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0" msg:"userId is required"`
}

// JoinClub обрабатывает POST /api/clubs/code/{clubCode}/join
func (h *MembershipHandler) JoinClub(w http.ResponseWriter, r *http.Request) {
	var req ClubMemberRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.membershipService.JoinClub(r.Context(), chi.URLParam(r, "clubCode"), req.UserID, req.Role)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}

// AddClubMember обрабатывает POST /api/clubs/{id}/members
func (h *MembershipHandler) AddClubMember(w http.ResponseWriter, r *http.Request) {
	clubID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req ClubMemberRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.membershipService.AddClubMember(r.Context(), clubID, req.UserID, req.Role)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}

// ListClubMembers обрабатывает GET /api/clubs/{id}/members?role=...
func (h *MembershipHandler) ListClubMembers(w http.ResponseWriter, r *http.Request) {
	clubID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	role := domain.ClubRole(r.URL.Query().Get("role"))
	members, err := h.membershipService.ListClubMembers(r.Context(), clubID, role)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, members)
}

// UpdateClubMemberRole обрабатывает PUT /api/clubs/{id}/members/{userId}
func (h *MembershipHandler) UpdateClubMemberRole(w http.ResponseWriter, r *http.Request) {
	clubID, userID, err := memberParams(r)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateRoleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.membershipService.UpdateClubMemberRole(r.Context(), clubID, userID, req.Role)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}

// RemoveClubMember обрабатывает DELETE /api/clubs/{id}/members/{userId}
func (h *MembershipHandler) RemoveClubMember(w http.ResponseWriter, r *http.Request) {
	clubID, userID, err := memberParams(r)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.membershipService.RemoveClubMember(r.Context(), clubID, userID); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, http.StatusOK, "Member removed")
}

// JoinTeam обрабатывает POST /api/teams/code/{teamCode}/join
func (h *MembershipHandler) JoinTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.membershipService.JoinTeam(r.Context(), chi.URLParam(r, "teamCode"), req.UserID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}

// AddTeamMember обрабатывает POST /api/teams/{id}/members
func (h *MembershipHandler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req TeamMemberRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.membershipService.AddTeamMember(r.Context(), teamID, req.UserID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}

// ListTeamMembers обрабатывает GET /api/teams/{id}/members
func (h *MembershipHandler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	members, err := h.membershipService.ListTeamMembers(r.Context(), teamID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, members)
}

// RemoveTeamMember обрабатывает DELETE /api/teams/{id}/members/{userId}
func (h *MembershipHandler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	teamID, userID, err := memberParams(r)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.membershipService.RemoveTeamMember(r.Context(), teamID, userID); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, http.StatusOK, "Member removed")
}

func memberParams(r *http.Request) (int64, int64, error) {
	groupID, err := idParam(r, "id")
	if err != nil {
		return 0, 0, err
	}
	userID, err := idParam(r, "userId")
	if err != nil {
		return 0, 0, err
	}
	return groupID, userID, nil
}
