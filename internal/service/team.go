package service

import (
	"context"
	"errors"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/repository"
)

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo   repository.TeamRepository
	clubRepo   repository.ClubRepository
	userRepo   repository.UserRepository
	playerRepo repository.PlayerRepository
	codes      *CodeGenerator
}

// NewTeamService creates a new TeamService
func NewTeamService(store *repository.Store, codes *CodeGenerator) *TeamService {
	return &TeamService{
		teamRepo:   store.Teams,
		clubRepo:   store.Clubs,
		userRepo:   store.Users,
		playerRepo: store.Players,
		codes:      codes,
	}
}

// CreateTeam creates a team in an existing club with an existing manager.
// The club is checked before the manager.
func (s *TeamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.TeamDetails, error) {
	club, err := s.clubRepo.GetByID(ctx, team.ClubID)
	if err != nil {
		return nil, err
	}

	manager, err := s.manager(ctx, team.ManagerID)
	if err != nil {
		return nil, err
	}

	err = insertWithCode(ctx, s.codes, s.teamRepo.ExistsByCode, func(code string) error {
		team.TeamCode = code
		return s.teamRepo.Create(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	return &domain.TeamDetails{
		Team:    team,
		Club:    club.Ref(),
		Manager: manager.Ref(),
	}, nil
}

// ListClubTeams returns the teams of a club with manager and counts
func (s *TeamService) ListClubTeams(ctx context.Context, clubID int64, filter domain.TeamFilter) ([]*domain.TeamDetails, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByClub(ctx, clubID, filter)
	if err != nil {
		return nil, err
	}

	return s.detailsList(ctx, teams, func(*domain.Team) (*domain.Club, error) { return club, nil })
}

// ListManagerTeams returns the teams managed by a user
func (s *TeamService) ListManagerTeams(ctx context.Context, managerID int64) ([]*domain.TeamDetails, error) {
	if _, err := s.manager(ctx, managerID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	clubs := make(map[int64]*domain.Club)
	return s.detailsList(ctx, teams, func(team *domain.Team) (*domain.Club, error) {
		if club, ok := clubs[team.ClubID]; ok {
			return club, nil
		}
		club, err := s.clubRepo.GetByID(ctx, team.ClubID)
		if err != nil {
			return nil, err
		}
		clubs[team.ClubID] = club
		return club, nil
	})
}

// GetTeam retrieves a team by ID
func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (*domain.TeamDetails, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, team, nil)
}

// GetTeamByCode retrieves a team by its join code
func (s *TeamService) GetTeamByCode(ctx context.Context, teamCode string) (*domain.TeamDetails, error) {
	team, err := s.teamRepo.GetByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, team, nil)
}

// GetTeamStats returns aggregated player statistics of a team
func (s *TeamService) GetTeamStats(ctx context.Context, teamID int64) (*domain.TeamStats, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.playerRepo.TeamStats(ctx, teamID)
}

// DeleteTeam removes a team together with its players and memberships
func (s *TeamService) DeleteTeam(ctx context.Context, teamID int64) error {
	return s.teamRepo.Delete(ctx, teamID)
}

// manager loads a user referenced as team manager
func (s *TeamService) manager(ctx context.Context, managerID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, managerID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrManagerNotFound
	}
	return user, err
}

func (s *TeamService) detailsList(
	ctx context.Context,
	teams []*domain.Team,
	clubOf func(*domain.Team) (*domain.Club, error),
) ([]*domain.TeamDetails, error) {
	result := make([]*domain.TeamDetails, 0, len(teams))
	for _, team := range teams {
		club, err := clubOf(team)
		if err != nil {
			return nil, err
		}
		details, err := s.details(ctx, team, club)
		if err != nil {
			return nil, err
		}
		result = append(result, details)
	}
	return result, nil
}

// details composes a team view; a nil club is loaded by the team's club id
func (s *TeamService) details(ctx context.Context, team *domain.Team, club *domain.Club) (*domain.TeamDetails, error) {
	var err error
	if club == nil {
		club, err = s.clubRepo.GetByID(ctx, team.ClubID)
		if err != nil {
			return nil, err
		}
	}

	manager, err := s.manager(ctx, team.ManagerID)
	if err != nil {
		return nil, err
	}

	counts, err := s.teamRepo.Counts(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &domain.TeamDetails{
		Team:    team,
		Club:    club.Ref(),
		Manager: manager.Ref(),
		Counts:  *counts,
	}, nil
}
