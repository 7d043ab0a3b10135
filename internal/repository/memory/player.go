package memory

import (
	"context"
	"sort"

	"github.com/aidar/greenlink/internal/domain"
)

// PlayerRepository реализует repository.PlayerRepository в памяти
type PlayerRepository struct {
	db *DB
}

// Create сохраняет нового игрока. Команда должна существовать
func (r *PlayerRepository) Create(_ context.Context, player *domain.Player) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.teams[player.TeamID]; !ok {
		return domain.ErrTeamNotFound
	}

	player.ID = r.db.allocID("players")
	r.db.players[player.ID] = clonePlayer(player)
	return nil
}

// GetByID возвращает игрока по id
func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (*domain.Player, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return clonePlayer(p), nil
}

// ListByTeam возвращает игроков команды в порядке id
func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64, filter domain.PlayerFilter) ([]*domain.Player, error) {
	players := r.teamPlayers(teamID, func(p *domain.Player) bool {
		if filter.Position == "" {
			return true
		}
		return p.Position != nil && *p.Position == filter.Position
	})
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

// Update перезаписывает изменяемые поля игрока. Команда не меняется
func (r *PlayerRepository) Update(_ context.Context, player *domain.Player) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.players[player.ID]
	if !ok {
		return domain.ErrPlayerNotFound
	}

	player.TeamID = stored.TeamID
	r.db.players[player.ID] = clonePlayer(player)
	return nil
}

// Delete удаляет игрока
func (r *PlayerRepository) Delete(_ context.Context, playerID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.players[playerID]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(r.db.players, playerID)
	return nil
}

// Leaders возвращает до limit игроков команды по убыванию показателя, при равенстве по id
func (r *PlayerRepository) Leaders(_ context.Context, teamID int64, stat domain.PlayerStat, limit int) ([]*domain.Player, error) {
	var value func(*domain.Player) int
	switch stat {
	case domain.StatGoals:
		value = func(p *domain.Player) int { return p.Goals }
	case domain.StatAssists:
		value = func(p *domain.Player) int { return p.Assists }
	case domain.StatMatches:
		value = func(p *domain.Player) int { return p.MatchesPlayed }
	default:
		return nil, domain.ErrInvalidStat
	}

	players := r.teamPlayers(teamID, func(*domain.Player) bool { return true })
	sort.Slice(players, func(i, j int) bool {
		vi, vj := value(players[i]), value(players[j])
		if vi != vj {
			return vi > vj
		}
		return players[i].ID < players[j].ID
	})

	if limit >= 0 && len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

// TeamStats суммирует статистику всех игроков команды
func (r *PlayerRepository) TeamStats(_ context.Context, teamID int64) (*domain.TeamStats, error) {
	stats := &domain.TeamStats{
		TeamID:     teamID,
		ByPosition: map[string]int{},
	}

	for _, p := range r.teamPlayers(teamID, func(*domain.Player) bool { return true }) {
		stats.PlayerCount++
		stats.MatchesPlayed += p.MatchesPlayed
		stats.Goals += p.Goals
		stats.Assists += p.Assists
		stats.YellowCards += p.YellowCards
		stats.RedCards += p.RedCards

		position := ""
		if p.Position != nil {
			position = *p.Position
		}
		stats.ByPosition[position]++
	}

	return stats, nil
}

func (r *PlayerRepository) teamPlayers(teamID int64, match func(*domain.Player) bool) []*domain.Player {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	players := []*domain.Player{}
	for _, p := range r.db.players {
		if p.TeamID == teamID && match(p) {
			players = append(players, clonePlayer(p))
		}
	}
	return players
}

func clonePlayer(p *domain.Player) *domain.Player {
	c := *p
	if p.Position != nil {
		position := *p.Position
		c.Position = &position
	}
	if p.JerseyNumber != nil {
		number := *p.JerseyNumber
		c.JerseyNumber = &number
	}
	return &c
}
