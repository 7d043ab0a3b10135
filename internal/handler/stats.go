package handler

import (
	"net/http"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/service"
)

// StatsHandler обрабатывает эндпоинты статистики команд
type StatsHandler struct {
	teamService   *service.TeamService
	playerService *service.PlayerService
}

// NewStatsHandler создает новый StatsHandler
func NewStatsHandler(teamService *service.TeamService, playerService *service.PlayerService) *StatsHandler {
	return &StatsHandler{
		teamService:   teamService,
		playerService: playerService,
	}
}

// GetTeamStats обрабатывает GET /api/teams/{id}/stats
func (h *StatsHandler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := h.teamService.GetTeamStats(r.Context(), teamID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetTeamLeaders обрабатывает GET /api/players/team/{teamId}/leaders?stat=goals&limit=5
func (h *StatsHandler) GetTeamLeaders(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "teamId")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	limit, err := intQuery(r, "limit")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	stat := domain.PlayerStat(r.URL.Query().Get("stat"))
	if stat == "" {
		stat = domain.StatGoals
	}

	players, err := h.playerService.TeamLeaders(r.Context(), teamID, stat, int(limit))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newPlayerResponses(players))
}
