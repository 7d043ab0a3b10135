package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/service"
)

// TeamHandler обрабатывает эндпоинты команд
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeamRequest представляет тело запроса на создание команды
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100" msg:"Team name is required"`
	AgeGroup    string `json:"ageGroup" validate:"max=20"`
	Description string `json:"description" validate:"max=1000"`
	ClubID      int64  `json:"clubId" validate:"required,gt=0" msg:"clubId is required"`
	ManagerID   int64  `json:"managerId" validate:"required,gt=0" msg:"managerId is required"`
}

// TeamResponse представляет команду со ссылками на клуб и менеджера
type TeamResponse struct {
	*domain.Team
	Club    domain.ClubRef `json:"club"`
	Manager domain.UserRef `json:"manager"`
	domain.TeamCounts
}

func newTeamResponse(details *domain.TeamDetails) TeamResponse {
	return TeamResponse{
		Team:       details.Team,
		Club:       details.Club,
		Manager:    details.Manager,
		TeamCounts: details.Counts,
	}
}

func newTeamResponses(list []*domain.TeamDetails) []TeamResponse {
	result := make([]TeamResponse, 0, len(list))
	for _, details := range list {
		result = append(result, newTeamResponse(details))
	}
	return result
}

// CreateTeam обрабатывает POST /api/teams
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.teamService.CreateTeam(r.Context(), &domain.Team{
		Name:        req.Name,
		AgeGroup:    req.AgeGroup,
		Description: req.Description,
		ClubID:      req.ClubID,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newTeamResponse(details))
}

// ListClubTeams обрабатывает GET /api/teams/club/{clubId}?name=...&ageGroup=...
func (h *TeamHandler) ListClubTeams(w http.ResponseWriter, r *http.Request) {
	clubID, err := idParam(r, "clubId")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()
	teams, err := h.teamService.ListClubTeams(r.Context(), clubID, domain.TeamFilter{
		Name:     query.Get("name"),
		AgeGroup: query.Get("ageGroup"),
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newTeamResponses(teams))
}

// ListManagerTeams обрабатывает GET /api/teams/manager/{managerId}
func (h *TeamHandler) ListManagerTeams(w http.ResponseWriter, r *http.Request) {
	managerID, err := idParam(r, "managerId")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	teams, err := h.teamService.ListManagerTeams(r.Context(), managerID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newTeamResponses(teams))
}

// GetTeam обрабатывает GET /api/teams/{id}
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newTeamResponse(details))
}

// GetTeamByCode обрабатывает GET /api/teams/code/{teamCode}
func (h *TeamHandler) GetTeamByCode(w http.ResponseWriter, r *http.Request) {
	details, err := h.teamService.GetTeamByCode(r.Context(), chi.URLParam(r, "teamCode"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newTeamResponse(details))
}

// DeleteTeam обрабатывает DELETE /api/teams/{id}
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), teamID); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, http.StatusOK, "Team deleted")
}
