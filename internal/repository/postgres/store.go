package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/greenlink/internal/repository"
)

// NewStore собирает все PostgreSQL репозитории над одним пулом соединений
func NewStore(db *pgxpool.Pool) *repository.Store {
	return &repository.Store{
		Users:       NewUserRepository(db),
		Clubs:       NewClubRepository(db),
		Teams:       NewTeamRepository(db),
		Players:     NewPlayerRepository(db),
		Memberships: NewMembershipRepository(db),
	}
}
