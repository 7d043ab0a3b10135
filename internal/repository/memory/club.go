package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/aidar/greenlink/internal/domain"
)

// ClubRepository реализует repository.ClubRepository в памяти
type ClubRepository struct {
	db *DB
}

// Create сохраняет новый клуб. Владелец должен существовать, код должен быть свободен
func (r *ClubRepository) Create(_ context.Context, club *domain.Club) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[club.OwnerID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, c := range r.db.clubs {
		if c.ClubCode == club.ClubCode {
			return domain.ErrCodeTaken
		}
	}

	now := r.db.now()
	club.ID = r.db.allocID("clubs")
	club.CreatedAt = now
	club.UpdatedAt = now
	stored := *club
	r.db.clubs[club.ID] = &stored
	return nil
}

// GetByID возвращает клуб по id
func (r *ClubRepository) GetByID(_ context.Context, clubID int64) (*domain.Club, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.clubs[clubID]
	if !ok {
		return nil, domain.ErrClubNotFound
	}
	found := *c
	return &found, nil
}

// GetByCode возвращает клуб по коду вступления
func (r *ClubRepository) GetByCode(_ context.Context, clubCode string) (*domain.Club, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.clubs {
		if c.ClubCode == clubCode {
			found := *c
			return &found, nil
		}
	}
	return nil, domain.ErrClubNotFound
}

// ExistsByCode сообщает, занят ли код клуба
func (r *ClubRepository) ExistsByCode(_ context.Context, clubCode string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.clubs {
		if c.ClubCode == clubCode {
			return true, nil
		}
	}
	return false, nil
}

// List возвращает клубы по фильтру в порядке id
func (r *ClubRepository) List(_ context.Context, filter domain.ClubFilter) ([]*domain.Club, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	name := strings.ToLower(filter.Name)
	clubs := []*domain.Club{}
	for _, c := range r.db.clubs {
		if name != "" && !strings.Contains(strings.ToLower(c.Name), name) {
			continue
		}
		if filter.OwnerID != 0 && c.OwnerID != filter.OwnerID {
			continue
		}
		found := *c
		clubs = append(clubs, &found)
	}

	sort.Slice(clubs, func(i, j int) bool { return clubs[i].ID < clubs[j].ID })
	return clubs, nil
}

// Counts возвращает число команд и участников клуба
func (r *ClubRepository) Counts(_ context.Context, clubID int64) (*domain.ClubCounts, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var counts domain.ClubCounts
	for _, t := range r.db.teams {
		if t.ClubID == clubID {
			counts.TeamCount++
		}
	}
	for _, m := range r.db.clubMembers {
		if m.ClubID == clubID {
			counts.MemberCount++
		}
	}
	return &counts, nil
}

// Delete удаляет клуб вместе с командами, их игроками и участниками, а также участников клуба
func (r *ClubRepository) Delete(_ context.Context, clubID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.clubs[clubID]; !ok {
		return domain.ErrClubNotFound
	}

	for id, t := range r.db.teams {
		if t.ClubID == clubID {
			r.db.deleteTeamLocked(id)
		}
	}
	for id, m := range r.db.clubMembers {
		if m.ClubID == clubID {
			delete(r.db.clubMembers, id)
		}
	}
	delete(r.db.clubs, clubID)
	return nil
}
