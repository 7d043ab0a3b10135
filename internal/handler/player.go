package handler

import (
	"net/http"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/service"
)

// PlayerHandler обрабатывает эндпоинты игроков
type PlayerHandler struct {
	playerService *service.PlayerService
}

// NewPlayerHandler создает новый PlayerHandler
func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// CreatePlayerRequest представляет тело запроса на добавление игрока
type CreatePlayerRequest struct {
	Name         string  `json:"name" validate:"required,max=100" msg:"Player name is required"`
	Position     *string `json:"position" validate:"omitempty,max=50"`
	JerseyNumber *int    `json:"jerseyNumber" validate:"omitempty,gte=0,lte=2147483647" msg:"Jersey number cannot be negative" msg_lte:"Jersey number is too large"`
	TeamID       int64   `json:"teamId" validate:"required,gt=0" msg:"teamId is required"`
}

// UpdatePlayerRequest представляет тело запроса на обновление игрока.
// Все поля перезаписываются целиком
type UpdatePlayerRequest struct {
	Name          string  `json:"name" validate:"required,max=100" msg:"Player name is required"`
	Position      *string `json:"position" validate:"omitempty,max=50"`
	JerseyNumber  *int    `json:"jerseyNumber" validate:"omitempty,gte=0,lte=2147483647" msg:"Jersey number cannot be negative" msg_lte:"Jersey number is too large"`
	MatchesPlayed int     `json:"matchesPlayed" validate:"gte=0,lte=2147483647" msg:"Matches played cannot be negative" msg_lte:"Matches played is too large"`
	Goals         int     `json:"goals" validate:"gte=0,lte=2147483647" msg:"Goals cannot be negative" msg_lte:"Goals is too large"`
	Assists       int     `json:"assists" validate:"gte=0,lte=2147483647" msg:"Assists cannot be negative" msg_lte:"Assists is too large"`
	YellowCards   int     `json:"yellowCards" validate:"gte=0,lte=2147483647" msg:"Yellow cards cannot be negative" msg_lte:"Yellow cards is too large"`
	RedCards      int     `json:"redCards" validate:"gte=0,lte=2147483647" msg:"Red cards cannot be negative" msg_lte:"Red cards is too large"`
}

// PlayerResponse представляет игрока с вычисляемыми показателями
type PlayerResponse struct {
	*domain.Player
	GoalsPerMatch   float64 `json:"goalsPerMatch"`
	AssistsPerMatch float64 `json:"assistsPerMatch"`
	TotalCards      int     `json:"totalCards"`
}

func newPlayerResponse(player *domain.Player) PlayerResponse {
	return PlayerResponse{
		Player:          player,
		GoalsPerMatch:   player.GoalsPerMatch(),
		AssistsPerMatch: player.AssistsPerMatch(),
		TotalCards:      player.TotalCards(),
	}
}

func newPlayerResponses(players []*domain.Player) []PlayerResponse {
	result := make([]PlayerResponse, 0, len(players))
	for _, player := range players {
		result = append(result, newPlayerResponse(player))
	}
	return result
}

// ListTeamPlayers обрабатывает GET /api/players/team/{teamId}?position=...
func (h *PlayerHandler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "teamId")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	players, err := h.playerService.ListTeamPlayers(r.Context(), teamID, domain.PlayerFilter{
		Position: r.URL.Query().Get("position"),
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newPlayerResponses(players))
}

// CreatePlayer обрабатывает POST /api/players
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), &domain.Player{
		Name:         req.Name,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		TeamID:       req.TeamID,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newPlayerResponse(player))
}

// GetPlayer обрабатывает GET /api/players/{id}
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), playerID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newPlayerResponse(player))
}

// UpdatePlayer обрабатывает PUT /api/players/{id}
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdatePlayerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), &domain.Player{
		ID:           playerID,
		Name:         req.Name,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		PlayerStats: domain.PlayerStats{
			MatchesPlayed: req.MatchesPlayed,
			Goals:         req.Goals,
			Assists:       req.Assists,
			YellowCards:   req.YellowCards,
			RedCards:      req.RedCards,
		},
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newPlayerResponse(player))
}

// DeletePlayer обрабатывает DELETE /api/players/{id}. Повторное удаление возвращает ошибку
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := idParam(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.playerService.DeletePlayer(r.Context(), playerID); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, http.StatusOK, "Player deleted")
}
