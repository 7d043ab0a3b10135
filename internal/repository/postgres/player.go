package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/greenlink/internal/domain"
)

// PlayerRepository реализует repository.PlayerRepository для PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository создает новый экземпляр PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `id, name, position, jersey_number, team_id,
	matches_played, goals, assists, yellow_cards, red_cards`

// leaderOrder maps a stat to a fixed ORDER BY clause; never built from user input.
var leaderOrder = map[domain.PlayerStat]string{
	domain.StatGoals:   `goals DESC, id`,
	domain.StatAssists: `assists DESC, id`,
	domain.StatMatches: `matches_played DESC, id`,
}

// Create сохраняет нового игрока
func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (name, position, jersey_number, team_id,
			matches_played, goals, assists, yellow_cards, red_cards)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		player.Name, player.Position, player.JerseyNumber, player.TeamID,
		player.MatchesPlayed, player.Goals, player.Assists, player.YellowCards, player.RedCards,
	).Scan(&player.ID)
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// GetByID получает игрока по ID
func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	player, err := scanPlayer(r.db.QueryRow(ctx, query, playerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}

	return player, nil
}

// ListByTeam возвращает игроков команды
func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64, filter domain.PlayerFilter) ([]*domain.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE team_id = $1 AND ($2::text = '' OR position = $2::text)
		ORDER BY id
	`

	return r.list(ctx, query, teamID, filter.Position)
}

// Update перезаписывает изменяемые поля игрока
func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	query := `
		UPDATE players
		SET name = $1, position = $2, jersey_number = $3,
		    matches_played = $4, goals = $5, assists = $6, yellow_cards = $7, red_cards = $8
		WHERE id = $9
		RETURNING team_id
	`

	err := r.db.QueryRow(ctx, query,
		player.Name, player.Position, player.JerseyNumber,
		player.MatchesPlayed, player.Goals, player.Assists, player.YellowCards, player.RedCards,
		player.ID,
	).Scan(&player.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPlayerNotFound
		}
		return err
	}

	return nil
}

// Delete удаляет игрока
func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM players WHERE id = $1`, playerID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}

	return nil
}

// Leaders возвращает лучших игроков команды по статистике
func (r *PlayerRepository) Leaders(ctx context.Context, teamID int64, stat domain.PlayerStat, limit int) ([]*domain.Player, error) {
	order, ok := leaderOrder[stat]
	if !ok {
		return nil, domain.ErrInvalidStat
	}

	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE team_id = $1
		ORDER BY ` + order + `
		LIMIT $2
	`

	return r.list(ctx, query, teamID, limit)
}

// TeamStats возвращает агрегированную статистику игроков команды
func (r *PlayerRepository) TeamStats(ctx context.Context, teamID int64) (*domain.TeamStats, error) {
	stats := &domain.TeamStats{
		TeamID:     teamID,
		ByPosition: map[string]int{},
	}

	totalsQuery := `
		SELECT
			COUNT(*),
			COALESCE(SUM(matches_played), 0),
			COALESCE(SUM(goals), 0),
			COALESCE(SUM(assists), 0),
			COALESCE(SUM(yellow_cards), 0),
			COALESCE(SUM(red_cards), 0)
		FROM players
		WHERE team_id = $1
	`

	if err := r.db.QueryRow(ctx, totalsQuery, teamID).Scan(
		&stats.PlayerCount,
		&stats.MatchesPlayed,
		&stats.Goals,
		&stats.Assists,
		&stats.YellowCards,
		&stats.RedCards,
	); err != nil {
		return nil, err
	}

	positionQuery := `
		SELECT COALESCE(position, ''), COUNT(*)
		FROM players
		WHERE team_id = $1
		GROUP BY COALESCE(position, '')
	`

	rows, err := r.db.Query(ctx, positionQuery, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var position string
		var count int
		if err := rows.Scan(&position, &count); err != nil {
			return nil, err
		}
		stats.ByPosition[position] = count
	}

	return stats, rows.Err()
}

func (r *PlayerRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Player, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []*domain.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var player domain.Player
	err := row.Scan(
		&player.ID,
		&player.Name,
		&player.Position,
		&player.JerseyNumber,
		&player.TeamID,
		&player.MatchesPlayed,
		&player.Goals,
		&player.Assists,
		&player.YellowCards,
		&player.RedCards,
	)
	if err != nil {
		return nil, err
	}
	return &player, nil
}
