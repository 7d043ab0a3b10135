package memory

import (
	"context"
	"sort"

	"github.com/aidar/greenlink/internal/domain"
)

// MembershipRepository реализует repository.MembershipRepository в памяти
type MembershipRepository struct {
	db *DB
}

// AddClubMember сохраняет членство в клубе; пара (клуб, пользователь) уникальна
func (r *MembershipRepository) AddClubMember(_ context.Context, member *domain.ClubMember) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.clubs[member.ClubID]; !ok {
		return domain.ErrClubNotFound
	}
	if _, ok := r.db.users[member.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, m := range r.db.clubMembers {
		if m.ClubID == member.ClubID && m.UserID == member.UserID {
			return domain.ErrAlreadyClubMember
		}
	}

	member.ID = r.db.allocID("club_members")
	member.JoinedAt = r.db.now()
	stored := *member
	r.db.clubMembers[member.ID] = &stored
	return nil
}

// GetClubMember возвращает членство пользователя в клубе
func (r *MembershipRepository) GetClubMember(_ context.Context, clubID, userID int64) (*domain.ClubMember, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if m := r.findClubMember(clubID, userID); m != nil {
		found := *m
		return &found, nil
	}
	return nil, domain.ErrMemberNotFound
}

// ListClubMembers возвращает участников клуба, при необходимости только с одной ролью
func (r *MembershipRepository) ListClubMembers(_ context.Context, clubID int64, role domain.ClubRole) ([]*domain.ClubMember, error) {
	return r.listClubMembers(func(m *domain.ClubMember) bool {
		return m.ClubID == clubID && (role == "" || m.Role == role)
	}), nil
}

// ListUserClubs возвращает все членства пользователя в клубах
func (r *MembershipRepository) ListUserClubs(_ context.Context, userID int64) ([]*domain.ClubMember, error) {
	return r.listClubMembers(func(m *domain.ClubMember) bool { return m.UserID == userID }), nil
}

// UpdateClubMemberRole меняет роль участника клуба
func (r *MembershipRepository) UpdateClubMemberRole(_ context.Context, clubID, userID int64, role domain.ClubRole) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m := r.findClubMember(clubID, userID)
	if m == nil {
		return domain.ErrMemberNotFound
	}
	m.Role = role
	return nil
}

// RemoveClubMember удаляет членство в клубе
func (r *MembershipRepository) RemoveClubMember(_ context.Context, clubID, userID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m := r.findClubMember(clubID, userID)
	if m == nil {
		return domain.ErrMemberNotFound
	}
	delete(r.db.clubMembers, m.ID)
	return nil
}

// AddTeamMember сохраняет членство в команде; пара (команда, пользователь) уникальна
func (r *MembershipRepository) AddTeamMember(_ context.Context, member *domain.TeamMember) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.teams[member.TeamID]; !ok {
		return domain.ErrTeamNotFound
	}
	if _, ok := r.db.users[member.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, m := range r.db.teamMembers {
		if m.TeamID == member.TeamID && m.UserID == member.UserID {
			return domain.ErrAlreadyTeamMember
		}
	}

	member.ID = r.db.allocID("team_members")
	member.JoinedAt = r.db.now()
	stored := *member
	r.db.teamMembers[member.ID] = &stored
	return nil
}

// ListTeamMembers возвращает участников команды
func (r *MembershipRepository) ListTeamMembers(_ context.Context, teamID int64) ([]*domain.TeamMember, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	members := []*domain.TeamMember{}
	for _, m := range r.db.teamMembers {
		if m.TeamID == teamID {
			found := *m
			members = append(members, &found)
		}
	}

	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

// RemoveTeamMember удаляет членство в команде
func (r *MembershipRepository) RemoveTeamMember(_ context.Context, teamID, userID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, m := range r.db.teamMembers {
		if m.TeamID == teamID && m.UserID == userID {
			delete(r.db.teamMembers, id)
			return nil
		}
	}
	return domain.ErrMemberNotFound
}

// findClubMember ищет членство. Вызывающий держит блокировку
func (r *MembershipRepository) findClubMember(clubID, userID int64) *domain.ClubMember {
	for _, m := range r.db.clubMembers {
		if m.ClubID == clubID && m.UserID == userID {
			return m
		}
	}
	return nil
}

func (r *MembershipRepository) listClubMembers(match func(*domain.ClubMember) bool) []*domain.ClubMember {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	members := []*domain.ClubMember{}
	for _, m := range r.db.clubMembers {
		if match(m) {
			found := *m
			members = append(members, &found)
		}
	}

	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members
}
