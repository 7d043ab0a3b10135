package service

import (
	"context"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/repository"
)

// DefaultLeadersLimit is used when the caller gives no positive limit
const DefaultLeadersLimit = 5

// PlayerService handles business logic for players
type PlayerService struct {
	playerRepo repository.PlayerRepository
	teamRepo   repository.TeamRepository
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(store *repository.Store) *PlayerService {
	return &PlayerService{
		playerRepo: store.Players,
		teamRepo:   store.Teams,
	}
}

// ListTeamPlayers returns the players of an existing team
func (s *PlayerService) ListTeamPlayers(ctx context.Context, teamID int64, filter domain.PlayerFilter) ([]*domain.Player, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.playerRepo.ListByTeam(ctx, teamID, filter)
}

// CreatePlayer adds a player with zeroed stats to an existing team
func (s *PlayerService) CreatePlayer(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if _, err := s.teamRepo.GetByID(ctx, player.TeamID); err != nil {
		return nil, err
	}

	player.PlayerStats = domain.PlayerStats{}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// GetPlayer retrieves a player by ID
func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error) {
	return s.playerRepo.GetByID(ctx, playerID)
}

// UpdatePlayer overwrites name, position, jersey number and stats of a player.
// The team of the player never changes.
func (s *PlayerService) UpdatePlayer(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}
	return s.playerRepo.GetByID(ctx, player.ID)
}

// DeletePlayer removes a player. Deleting a missing player fails.
func (s *PlayerService) DeletePlayer(ctx context.Context, playerID int64) error {
	return s.playerRepo.Delete(ctx, playerID)
}

// TeamLeaders returns the best players of a team by the given stat
func (s *PlayerService) TeamLeaders(ctx context.Context, teamID int64, stat domain.PlayerStat, limit int) ([]*domain.Player, error) {
	if !stat.Valid() {
		return nil, domain.ErrInvalidStat
	}
	if limit <= 0 {
		limit = DefaultLeadersLimit
	}

	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.playerRepo.Leaders(ctx, teamID, stat, limit)
}
