package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/greenlink/internal/domain"
)

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository создает новый экземпляр TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

const teamColumns = `id, name, team_code, age_group, description, club_id, manager_id, created_at, updated_at`

// Create сохраняет новую команду
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, team_code, age_group, description, club_id, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		team.Name, team.TeamCode, team.AgeGroup, team.Description, team.ClubID, team.ManagerID,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// GetByID получает команду по ID
func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	return r.getOne(ctx, query, teamID)
}

// GetByCode получает команду по коду
func (r *TeamRepository) GetByCode(ctx context.Context, teamCode string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE team_code = $1`
	return r.getOne(ctx, query, teamCode)
}

func (r *TeamRepository) getOne(ctx context.Context, query string, arg any) (*domain.Team, error) {
	team, err := scanTeam(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}

	return team, nil
}

// ExistsByCode проверяет, занят ли код команды
func (r *TeamRepository) ExistsByCode(ctx context.Context, teamCode string) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM teams WHERE team_code = $1)`, teamCode)
}

// ListByClub возвращает команды клуба по фильтру
func (r *TeamRepository) ListByClub(ctx context.Context, clubID int64, filter domain.TeamFilter) ([]*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams
		WHERE club_id = $1
		  AND ($2::text = '' OR name ILIKE '%' || $2::text || '%')
		  AND ($3::text = '' OR age_group = $3::text)
		ORDER BY id
	`

	return r.list(ctx, query, clubID, escapeLike(filter.Name), filter.AgeGroup)
}

// ListByManager возвращает команды, которыми управляет пользователь
func (r *TeamRepository) ListByManager(ctx context.Context, managerID int64) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE manager_id = $1 ORDER BY id`
	return r.list(ctx, query, managerID)
}

func (r *TeamRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Team, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []*domain.Team{}
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// Counts возвращает количество игроков и участников команды
func (r *TeamRepository) Counts(ctx context.Context, teamID int64) (*domain.TeamCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM players WHERE team_id = $1),
			(SELECT COUNT(*) FROM team_members WHERE team_id = $1)
	`

	var counts domain.TeamCounts
	if err := r.db.QueryRow(ctx, query, teamID).Scan(&counts.PlayerCount, &counts.MemberCount); err != nil {
		return nil, err
	}

	return &counts, nil
}

// Delete удаляет команду, ее игроков и членства в одной транзакции
func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM teams WHERE id = $1 FOR UPDATE`, teamID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTeamNotFound
		}
		return err
	}

	steps := []string{
		`DELETE FROM players WHERE team_id = $1`,
		`DELETE FROM team_members WHERE team_id = $1`,
		`DELETE FROM teams WHERE id = $1`,
	}
	for _, step := range steps {
		if _, err := tx.Exec(ctx, step, teamID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var team domain.Team
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.TeamCode,
		&team.AgeGroup,
		&team.Description,
		&team.ClubID,
		&team.ManagerID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &team, nil
}
