package service

import (
	"context"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/repository"
)

// MembershipService handles club and team memberships
type MembershipService struct {
	memberRepo repository.MembershipRepository
	clubRepo   repository.ClubRepository
	teamRepo   repository.TeamRepository
	userRepo   repository.UserRepository
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(store *repository.Store) *MembershipService {
	return &MembershipService{
		memberRepo: store.Memberships,
		clubRepo:   store.Clubs,
		teamRepo:   store.Teams,
		userRepo:   store.Users,
	}
}

// JoinClub adds a user to the club with the given join code
func (s *MembershipService) JoinClub(ctx context.Context, clubCode string, userID int64, role domain.ClubRole) (*domain.ClubMember, error) {
	club, err := s.clubRepo.GetByCode(ctx, clubCode)
	if err != nil {
		return nil, err
	}
	return s.AddClubMember(ctx, club.ID, userID, role)
}

// AddClubMember adds a user to a club; an empty role means MEMBER
func (s *MembershipService) AddClubMember(ctx context.Context, clubID, userID int64, role domain.ClubRole) (*domain.ClubMember, error) {
	if role == "" {
		role = domain.ClubRoleMember
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	member := &domain.ClubMember{ClubID: clubID, UserID: userID, Role: role}
	if err := s.memberRepo.AddClubMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// ListClubMembers returns the members of a club, optionally filtered by role
func (s *MembershipService) ListClubMembers(ctx context.Context, clubID int64, role domain.ClubRole) ([]*domain.ClubMember, error) {
	if role != "" && !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListClubMembers(ctx, clubID, role)
}

// ListUserClubs returns the club memberships of a user
func (s *MembershipService) ListUserClubs(ctx context.Context, userID int64) ([]*domain.ClubMember, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListUserClubs(ctx, userID)
}

// UpdateClubMemberRole changes the role of a club member
func (s *MembershipService) UpdateClubMemberRole(ctx context.Context, clubID, userID int64, role domain.ClubRole) (*domain.ClubMember, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if err := s.memberRepo.UpdateClubMemberRole(ctx, clubID, userID, role); err != nil {
		return nil, err
	}
	return s.memberRepo.GetClubMember(ctx, clubID, userID)
}

// RemoveClubMember removes a user from a club
func (s *MembershipService) RemoveClubMember(ctx context.Context, clubID, userID int64) error {
	return s.memberRepo.RemoveClubMember(ctx, clubID, userID)
}

// JoinTeam adds a user to the team with the given join code
func (s *MembershipService) JoinTeam(ctx context.Context, teamCode string, userID int64) (*domain.TeamMember, error) {
	team, err := s.teamRepo.GetByCode(ctx, teamCode)
	if err != nil {
		return nil, err
	}
	return s.AddTeamMember(ctx, team.ID, userID)
}

// AddTeamMember adds a user to a team. Club membership is not required.
func (s *MembershipService) AddTeamMember(ctx context.Context, teamID, userID int64) (*domain.TeamMember, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	member := &domain.TeamMember{TeamID: teamID, UserID: userID}
	if err := s.memberRepo.AddTeamMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// ListTeamMembers returns the members of a team
func (s *MembershipService) ListTeamMembers(ctx context.Context, teamID int64) ([]*domain.TeamMember, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListTeamMembers(ctx, teamID)
}

// RemoveTeamMember removes a user from a team
func (s *MembershipService) RemoveTeamMember(ctx context.Context, teamID, userID int64) error {
	return s.memberRepo.RemoveTeamMember(ctx, teamID, userID)
}
