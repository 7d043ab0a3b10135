package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/greenlink/internal/domain"
)

// MembershipRepository реализует repository.MembershipRepository для PostgreSQL
type MembershipRepository struct {
	db *pgxpool.Pool
}

// NewMembershipRepository создает новый экземпляр MembershipRepository
func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{db: db}
}

const clubMemberColumns = `id, club_id, user_id, role, joined_at`

// AddClubMember добавляет пользователя в клуб
func (r *MembershipRepository) AddClubMember(ctx context.Context, member *domain.ClubMember) error {
	query := `
		INSERT INTO club_members (club_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at
	`

	err := r.db.QueryRow(ctx, query, member.ClubID, member.UserID, member.Role).
		Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// GetClubMember получает членство пользователя в клубе
func (r *MembershipRepository) GetClubMember(ctx context.Context, clubID, userID int64) (*domain.ClubMember, error) {
	query := `SELECT ` + clubMemberColumns + ` FROM club_members WHERE club_id = $1 AND user_id = $2`

	member, err := scanClubMember(r.db.QueryRow(ctx, query, clubID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}

	return member, nil
}

// ListClubMembers возвращает участников клуба
func (r *MembershipRepository) ListClubMembers(ctx context.Context, clubID int64, role domain.ClubRole) ([]*domain.ClubMember, error) {
	query := `
		SELECT ` + clubMemberColumns + `
		FROM club_members
		WHERE club_id = $1 AND ($2::text = '' OR role = $2::text)
		ORDER BY joined_at, id
	`

	return r.listClubMembers(ctx, query, clubID, string(role))
}

// ListUserClubs возвращает все членства пользователя в клубах
func (r *MembershipRepository) ListUserClubs(ctx context.Context, userID int64) ([]*domain.ClubMember, error) {
	query := `SELECT ` + clubMemberColumns + ` FROM club_members WHERE user_id = $1 ORDER BY joined_at, id`
	return r.listClubMembers(ctx, query, userID)
}

// UpdateClubMemberRole меняет роль участника клуба
func (r *MembershipRepository) UpdateClubMemberRole(ctx context.Context, clubID, userID int64, role domain.ClubRole) error {
	result, err := r.db.Exec(ctx,
		`UPDATE club_members SET role = $1 WHERE club_id = $2 AND user_id = $3`,
		role, clubID, userID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

// RemoveClubMember удаляет пользователя из клуба
func (r *MembershipRepository) RemoveClubMember(ctx context.Context, clubID, userID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM club_members WHERE club_id = $1 AND user_id = $2`, clubID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

// AddTeamMember добавляет пользователя в команду
func (r *MembershipRepository) AddTeamMember(ctx context.Context, member *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (team_id, user_id)
		VALUES ($1, $2)
		RETURNING id, joined_at
	`

	err := r.db.QueryRow(ctx, query, member.TeamID, member.UserID).Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// ListTeamMembers возвращает участников команды
func (r *MembershipRepository) ListTeamMembers(ctx context.Context, teamID int64) ([]*domain.TeamMember, error) {
	query := `
		SELECT id, team_id, user_id, joined_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY joined_at, id
	`

	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*domain.TeamMember{}
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(&member.ID, &member.TeamID, &member.UserID, &member.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	return members, rows.Err()
}

// RemoveTeamMember удаляет пользователя из команды
func (r *MembershipRepository) RemoveTeamMember(ctx context.Context, teamID, userID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

func (r *MembershipRepository) listClubMembers(ctx context.Context, query string, args ...any) ([]*domain.ClubMember, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*domain.ClubMember{}
	for rows.Next() {
		member, err := scanClubMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func scanClubMember(row pgx.Row) (*domain.ClubMember, error) {
	var member domain.ClubMember
	if err := row.Scan(&member.ID, &member.ClubID, &member.UserID, &member.Role, &member.JoinedAt); err != nil {
		return nil, err
	}
	return &member, nil
}
