package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/repository/postgres"
)

// TestPostgresRepositories проверяет ограничения схемы и их преобразование в доменные ошибки
func TestPostgresRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	env := SetupTestEnvironment(t)
	defer env.Cleanup(t)

	store := postgres.NewStore(env.DB)
	ctx := env.ctx

	owner := &domain.User{Username: "pg-owner", Email: "pg-owner@example.com", PasswordHash: "x", FullName: "PG Owner", Role: domain.RoleAdmin}
	require.NoError(t, store.Users.Create(ctx, owner))
	require.NotZero(t, owner.ID)

	t.Run("Unique Username And Email", func(t *testing.T) {
		err := store.Users.Create(ctx, &domain.User{Username: "pg-owner", Email: "new@example.com", PasswordHash: "x", FullName: "X", Role: domain.RolePlayer})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)

		err = store.Users.Create(ctx, &domain.User{Username: "new", Email: "pg-owner@example.com", PasswordHash: "x", FullName: "X", Role: domain.RolePlayer})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	club := &domain.Club{Name: "PG Club", ClubCode: "STORM4321", OwnerID: owner.ID}
	require.NoError(t, store.Clubs.Create(ctx, club))

	t.Run("Unique Club Code", func(t *testing.T) {
		err := store.Clubs.Create(ctx, &domain.Club{Name: "Copy", ClubCode: "STORM4321", OwnerID: owner.ID})
		assert.ErrorIs(t, err, domain.ErrCodeTaken)
	})

	t.Run("Foreign Keys", func(t *testing.T) {
		err := store.Clubs.Create(ctx, &domain.Club{Name: "Orphan", ClubCode: "FIRE1111", OwnerID: 424242})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		err = store.Teams.Create(ctx, &domain.Team{Name: "Orphan", TeamCode: "TEAM1111", ClubID: club.ID, ManagerID: 424242})
		assert.ErrorIs(t, err, domain.ErrManagerNotFound)

		err = store.Players.Create(ctx, &domain.Player{Name: "Orphan", TeamID: 424242})
		assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	})

	team := &domain.Team{Name: "PG Team", TeamCode: "UNITED1234", ClubID: club.ID, ManagerID: owner.ID}
	require.NoError(t, store.Teams.Create(ctx, team))

	t.Run("Leaders And Stats", func(t *testing.T) {
		forward := "Forward"
		for i, goals := range []int{3, 9, 1} {
			p := &domain.Player{Name: "P", Position: &forward, TeamID: team.ID}
			require.NoError(t, store.Players.Create(ctx, p))
			p.PlayerStats = domain.PlayerStats{MatchesPlayed: i + 1, Goals: goals}
			require.NoError(t, store.Players.Update(ctx, p))
		}

		leaders, err := store.Players.Leaders(ctx, team.ID, domain.StatGoals, 2)
		require.NoError(t, err)
		require.Len(t, leaders, 2)
		assert.Equal(t, 9, leaders[0].Goals)
		assert.Equal(t, 3, leaders[1].Goals)

		stats, err := store.Players.TeamStats(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.PlayerCount)
		assert.Equal(t, 13, stats.Goals)
		assert.Equal(t, 3, stats.ByPosition["Forward"])
	})

	t.Run("Delete Club Cascades", func(t *testing.T) {
		require.NoError(t, store.Memberships.AddClubMember(ctx, &domain.ClubMember{ClubID: club.ID, UserID: owner.ID, Role: domain.ClubRoleOwner}))
		require.NoError(t, store.Memberships.AddTeamMember(ctx, &domain.TeamMember{TeamID: team.ID, UserID: owner.ID}))

		err := store.Memberships.AddClubMember(ctx, &domain.ClubMember{ClubID: club.ID, UserID: owner.ID, Role: domain.ClubRoleMember})
		assert.ErrorIs(t, err, domain.ErrAlreadyClubMember)

		require.NoError(t, store.Clubs.Delete(ctx, club.ID))

		_, err = store.Teams.GetByID(ctx, team.ID)
		assert.ErrorIs(t, err, domain.ErrTeamNotFound)

		players, err := store.Players.ListByTeam(ctx, team.ID, domain.PlayerFilter{})
		require.NoError(t, err)
		assert.Empty(t, players)

		memberships, err := store.Memberships.ListUserClubs(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, memberships)

		assert.ErrorIs(t, store.Clubs.Delete(ctx, club.ID), domain.ErrClubNotFound)
	})
}
