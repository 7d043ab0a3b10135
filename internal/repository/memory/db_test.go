package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/repository"
)

var fixedNow = time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)

func newStore() *repository.Store {
	return NewStore(New(WithClock(func() time.Time { return fixedNow })))
}

func mustUser(t *testing.T, store *repository.Store, username string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, Email: username + "@example.com", FullName: username, Role: domain.RolePlayer}
	require.NoError(t, store.Users.Create(context.Background(), user))
	return user
}

func TestUsers_Uniqueness(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	user := mustUser(t, store, "alice")
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, fixedNow, user.CreatedAt)

	err := store.Users.Create(ctx, &domain.User{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	err = store.Users.Create(ctx, &domain.User{Username: "other", Email: "alice@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	exists, err := store.Users.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.Users.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestClubs_CodeUniquenessAndOwner(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	owner := mustUser(t, store, "owner")

	require.NoError(t, store.Clubs.Create(ctx, &domain.Club{Name: "A", ClubCode: "LIONS1234", OwnerID: owner.ID}))

	err := store.Clubs.Create(ctx, &domain.Club{Name: "B", ClubCode: "LIONS1234", OwnerID: owner.ID})
	assert.ErrorIs(t, err, domain.ErrCodeTaken)

	err = store.Clubs.Create(ctx, &domain.Club{Name: "C", ClubCode: "FIRE1000", OwnerID: 99})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	taken, err := store.Clubs.ExistsByCode(ctx, "LIONS1234")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestTeams_ReferencesMustExist(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	owner := mustUser(t, store, "owner")
	club := &domain.Club{Name: "A", ClubCode: "LIONS1234", OwnerID: owner.ID}
	require.NoError(t, store.Clubs.Create(ctx, club))

	err := store.Teams.Create(ctx, &domain.Team{Name: "T", TeamCode: "TEAM1000", ClubID: 42, ManagerID: owner.ID})
	assert.ErrorIs(t, err, domain.ErrClubNotFound)

	err = store.Teams.Create(ctx, &domain.Team{Name: "T", TeamCode: "TEAM1000", ClubID: club.ID, ManagerID: 42})
	assert.ErrorIs(t, err, domain.ErrManagerNotFound)

	err = store.Players.Create(ctx, &domain.Player{Name: "P", TeamID: 42})
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	owner := mustUser(t, store, "owner")
	club := &domain.Club{Name: "A", ClubCode: "LIONS1234", OwnerID: owner.ID}
	require.NoError(t, store.Clubs.Create(ctx, club))
	team := &domain.Team{Name: "T", TeamCode: "TEAM1000", ClubID: club.ID, ManagerID: owner.ID}
	require.NoError(t, store.Teams.Create(ctx, team))

	position := "Forward"
	player := &domain.Player{Name: "P", Position: &position, TeamID: team.ID}
	require.NoError(t, store.Players.Create(ctx, player))

	position = "Keeper"
	loaded, err := store.Players.GetByID(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Position)
	assert.Equal(t, "Forward", *loaded.Position)

	loaded.Name = "Changed"
	again, err := store.Players.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, "P", again.Name)
}

func TestTeams_DeleteCascades(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	owner := mustUser(t, store, "owner")
	club := &domain.Club{Name: "A", ClubCode: "LIONS1234", OwnerID: owner.ID}
	require.NoError(t, store.Clubs.Create(ctx, club))
	keep := &domain.Team{Name: "Keep", TeamCode: "TEAM1000", ClubID: club.ID, ManagerID: owner.ID}
	drop := &domain.Team{Name: "Drop", TeamCode: "TEAM2000", ClubID: club.ID, ManagerID: owner.ID}
	require.NoError(t, store.Teams.Create(ctx, keep))
	require.NoError(t, store.Teams.Create(ctx, drop))

	require.NoError(t, store.Players.Create(ctx, &domain.Player{Name: "stays", TeamID: keep.ID}))
	gone := &domain.Player{Name: "goes", TeamID: drop.ID}
	require.NoError(t, store.Players.Create(ctx, gone))
	require.NoError(t, store.Memberships.AddTeamMember(ctx, &domain.TeamMember{TeamID: drop.ID, UserID: owner.ID}))

	require.NoError(t, store.Teams.Delete(ctx, drop.ID))

	_, err := store.Players.GetByID(ctx, gone.ID)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	members, err := store.Memberships.ListTeamMembers(ctx, drop.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	counts, err := store.Clubs.Counts(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.TeamCount)

	kept, err := store.Players.ListByTeam(ctx, keep.ID, domain.PlayerFilter{})
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	assert.ErrorIs(t, store.Teams.Delete(ctx, drop.ID), domain.ErrTeamNotFound)
}

func TestMemberships_Duplicates(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	owner := mustUser(t, store, "owner")
	club := &domain.Club{Name: "A", ClubCode: "LIONS1234", OwnerID: owner.ID}
	require.NoError(t, store.Clubs.Create(ctx, club))

	member := &domain.ClubMember{ClubID: club.ID, UserID: owner.ID, Role: domain.ClubRoleOwner}
	require.NoError(t, store.Memberships.AddClubMember(ctx, member))
	assert.Equal(t, fixedNow, member.JoinedAt)

	err := store.Memberships.AddClubMember(ctx, &domain.ClubMember{ClubID: club.ID, UserID: owner.ID, Role: domain.ClubRoleMember})
	assert.ErrorIs(t, err, domain.ErrAlreadyClubMember)

	err = store.Memberships.AddClubMember(ctx, &domain.ClubMember{ClubID: 7, UserID: owner.ID, Role: domain.ClubRoleMember})
	assert.ErrorIs(t, err, domain.ErrClubNotFound)

	assert.ErrorIs(t, store.Memberships.UpdateClubMemberRole(ctx, club.ID, 99, domain.ClubRoleAdmin), domain.ErrMemberNotFound)
}
