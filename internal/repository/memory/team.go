package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/aidar/greenlink/internal/domain"
)

// TeamRepository реализует repository.TeamRepository в памяти
type TeamRepository struct {
	db *DB
}

// Create сохраняет новую команду. Клуб и менеджер должны существовать, код должен быть свободен
func (r *TeamRepository) Create(_ context.Context, team *domain.Team) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.clubs[team.ClubID]; !ok {
		return domain.ErrClubNotFound
	}
	if _, ok := r.db.users[team.ManagerID]; !ok {
		return domain.ErrManagerNotFound
	}
	for _, t := range r.db.teams {
		if t.TeamCode == team.TeamCode {
			return domain.ErrCodeTaken
		}
	}

	now := r.db.now()
	team.ID = r.db.allocID("teams")
	team.CreatedAt = now
	team.UpdatedAt = now
	stored := *team
	r.db.teams[team.ID] = &stored
	return nil
}

// GetByID возвращает команду по id
func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (*domain.Team, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, ok := r.db.teams[teamID]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	found := *t
	return &found, nil
}

// GetByCode возвращает команду по коду вступления
func (r *TeamRepository) GetByCode(_ context.Context, teamCode string) (*domain.Team, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, t := range r.db.teams {
		if t.TeamCode == teamCode {
			found := *t
			return &found, nil
		}
	}
	return nil, domain.ErrTeamNotFound
}

// ExistsByCode сообщает, занят ли код команды
func (r *TeamRepository) ExistsByCode(_ context.Context, teamCode string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, t := range r.db.teams {
		if t.TeamCode == teamCode {
			return true, nil
		}
	}
	return false, nil
}

// ListByClub возвращает команды клуба по фильтру
func (r *TeamRepository) ListByClub(_ context.Context, clubID int64, filter domain.TeamFilter) ([]*domain.Team, error) {
	name := strings.ToLower(filter.Name)
	return r.list(func(t *domain.Team) bool {
		if t.ClubID != clubID {
			return false
		}
		if name != "" && !strings.Contains(strings.ToLower(t.Name), name) {
			return false
		}
		return filter.AgeGroup == "" || t.AgeGroup == filter.AgeGroup
	}), nil
}

// ListByManager возвращает команды, которыми управляет пользователь
func (r *TeamRepository) ListByManager(_ context.Context, managerID int64) ([]*domain.Team, error) {
	return r.list(func(t *domain.Team) bool { return t.ManagerID == managerID }), nil
}

func (r *TeamRepository) list(match func(*domain.Team) bool) []*domain.Team {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	teams := []*domain.Team{}
	for _, t := range r.db.teams {
		if match(t) {
			found := *t
			teams = append(teams, &found)
		}
	}

	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams
}

// Counts возвращает число игроков и участников команды
func (r *TeamRepository) Counts(_ context.Context, teamID int64) (*domain.TeamCounts, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var counts domain.TeamCounts
	for _, p := range r.db.players {
		if p.TeamID == teamID {
			counts.PlayerCount++
		}
	}
	for _, m := range r.db.teamMembers {
		if m.TeamID == teamID {
			counts.MemberCount++
		}
	}
	return &counts, nil
}

// Delete удаляет команду вместе с игроками и участниками
func (r *TeamRepository) Delete(_ context.Context, teamID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.teams[teamID]; !ok {
		return domain.ErrTeamNotFound
	}
	r.db.deleteTeamLocked(teamID)
	return nil
}
