package service

import (
	"context"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/repository"
)

// ClubService handles business logic for clubs
type ClubService struct {
	clubRepo repository.ClubRepository
	userRepo repository.UserRepository
	codes    *CodeGenerator
}

// NewClubService creates a new ClubService
func NewClubService(store *repository.Store, codes *CodeGenerator) *ClubService {
	return &ClubService{
		clubRepo: store.Clubs,
		userRepo: store.Users,
		codes:    codes,
	}
}

// CreateClub creates a club owned by an existing user and assigns it a unique join code
func (s *ClubService) CreateClub(ctx context.Context, club *domain.Club) (*domain.ClubDetails, error) {
	owner, err := s.userRepo.GetByID(ctx, club.OwnerID)
	if err != nil {
		return nil, err
	}

	err = insertWithCode(ctx, s.codes, s.clubRepo.ExistsByCode, func(code string) error {
		club.ClubCode = code
		return s.clubRepo.Create(ctx, club)
	})
	if err != nil {
		return nil, err
	}

	return &domain.ClubDetails{Club: club, Owner: owner.Ref()}, nil
}

// ListClubs returns clubs matching the filter
func (s *ClubService) ListClubs(ctx context.Context, filter domain.ClubFilter) ([]*domain.Club, error) {
	return s.clubRepo.List(ctx, filter)
}

// GetClub retrieves a club by ID with its owner and counts
func (s *ClubService) GetClub(ctx context.Context, clubID int64) (*domain.ClubDetails, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, club)
}

// GetClubByCode retrieves a club by its join code with team and member counts
func (s *ClubService) GetClubByCode(ctx context.Context, clubCode string) (*domain.ClubDetails, error) {
	club, err := s.clubRepo.GetByCode(ctx, clubCode)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, club)
}

// DeleteClub removes a club together with its teams, players and memberships
func (s *ClubService) DeleteClub(ctx context.Context, clubID int64) error {
	return s.clubRepo.Delete(ctx, clubID)
}

func (s *ClubService) details(ctx context.Context, club *domain.Club) (*domain.ClubDetails, error) {
	counts, err := s.clubRepo.Counts(ctx, club.ID)
	if err != nil {
		return nil, err
	}

	details := &domain.ClubDetails{Club: club, Counts: *counts}

	owner, err := s.userRepo.GetByID(ctx, club.OwnerID)
	if err != nil {
		return nil, err
	}
	details.Owner = owner.Ref()

	return details, nil
}
