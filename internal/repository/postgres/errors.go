package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aidar/greenlink/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// constraintErrors maps named schema constraints to domain errors.
var constraintErrors = map[string]error{
	"users_username_key":         domain.ErrUsernameTaken,
	"users_email_key":            domain.ErrEmailTaken,
	"clubs_club_code_key":        domain.ErrCodeTaken,
	"clubs_owner_id_fkey":        domain.ErrUserNotFound,
	"club_members_club_user_key": domain.ErrAlreadyClubMember,
	"club_members_club_id_fkey":  domain.ErrClubNotFound,
	"club_members_user_id_fkey":  domain.ErrUserNotFound,
	"teams_team_code_key":        domain.ErrCodeTaken,
	"teams_club_id_fkey":         domain.ErrClubNotFound,
	"teams_manager_id_fkey":      domain.ErrManagerNotFound,
	"team_members_team_user_key": domain.ErrAlreadyTeamMember,
	"team_members_team_id_fkey":  domain.ErrTeamNotFound,
	"team_members_user_id_fkey":  domain.ErrUserNotFound,
	"players_team_id_fkey":       domain.ErrTeamNotFound,
}

// mapConstraintError translates unique and foreign key violations into domain errors.
// Other errors are returned unchanged.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code != codeUniqueViolation && pgErr.Code != codeForeignKeyViolation {
		return err
	}
	if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return mapped
	}
	return err
}
