package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/greenlink/internal/domain"
)

// ClubRepository реализует repository.ClubRepository для PostgreSQL
type ClubRepository struct {
	db *pgxpool.Pool
}

// NewClubRepository создает новый экземпляр ClubRepository
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{db: db}
}

const clubColumns = `id, name, club_code, description, location, owner_id, created_at, updated_at`

// Create сохраняет новый клуб
func (r *ClubRepository) Create(ctx context.Context, club *domain.Club) error {
	query := `
		INSERT INTO clubs (name, club_code, description, location, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		club.Name, club.ClubCode, club.Description, club.Location, club.OwnerID,
	).Scan(&club.ID, &club.CreatedAt, &club.UpdatedAt)
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// GetByID получает клуб по ID
func (r *ClubRepository) GetByID(ctx context.Context, clubID int64) (*domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	return r.getOne(ctx, query, clubID)
}

// GetByCode получает клуб по коду
func (r *ClubRepository) GetByCode(ctx context.Context, clubCode string) (*domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE club_code = $1`
	return r.getOne(ctx, query, clubCode)
}

func (r *ClubRepository) getOne(ctx context.Context, query string, arg any) (*domain.Club, error) {
	club, err := scanClub(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}
		return nil, err
	}

	return club, nil
}

// ExistsByCode проверяет, занят ли код клуба
func (r *ClubRepository) ExistsByCode(ctx context.Context, clubCode string) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM clubs WHERE club_code = $1)`, clubCode)
}

// List возвращает клубы по фильтру
func (r *ClubRepository) List(ctx context.Context, filter domain.ClubFilter) ([]*domain.Club, error) {
	query := `
		SELECT ` + clubColumns + `
		FROM clubs
		WHERE ($1::text = '' OR name ILIKE '%' || $1::text || '%')
		  AND ($2::bigint = 0 OR owner_id = $2::bigint)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, escapeLike(filter.Name), filter.OwnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := []*domain.Club{}
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}

	return clubs, rows.Err()
}

// Counts возвращает количество команд и участников клуба
func (r *ClubRepository) Counts(ctx context.Context, clubID int64) (*domain.ClubCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM teams WHERE club_id = $1),
			(SELECT COUNT(*) FROM club_members WHERE club_id = $1)
	`

	var counts domain.ClubCounts
	if err := r.db.QueryRow(ctx, query, clubID).Scan(&counts.TeamCount, &counts.MemberCount); err != nil {
		return nil, err
	}

	return &counts, nil
}

// Delete удаляет клуб и все принадлежащие ему сущности в одной транзакции
func (r *ClubRepository) Delete(ctx context.Context, clubID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	// Lock the club row so concurrent team inserts wait for the cascade
	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM clubs WHERE id = $1 FOR UPDATE`, clubID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrClubNotFound
		}
		return err
	}

	// Children first: players and team members of every team, then teams and club members
	steps := []string{
		`DELETE FROM players WHERE team_id IN (SELECT id FROM teams WHERE club_id = $1)`,
		`DELETE FROM team_members WHERE team_id IN (SELECT id FROM teams WHERE club_id = $1)`,
		`DELETE FROM teams WHERE club_id = $1`,
		`DELETE FROM club_members WHERE club_id = $1`,
		`DELETE FROM clubs WHERE id = $1`,
	}
	for _, step := range steps {
		if _, err := tx.Exec(ctx, step, clubID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func scanClub(row pgx.Row) (*domain.Club, error) {
	var club domain.Club
	err := row.Scan(
		&club.ID,
		&club.Name,
		&club.ClubCode,
		&club.Description,
		&club.Location,
		&club.OwnerID,
		&club.CreatedAt,
		&club.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// escapeLike escapes LIKE wildcards so a search term matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
