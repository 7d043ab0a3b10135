package integration

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тестовые структуры данных соответствующие API
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	PasswordHash string `json:"passwordHash"`
}

type Ref struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

type Club struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ClubCode    string `json:"clubCode"`
	OwnerID     int64  `json:"ownerId"`
	Owner       Ref    `json:"owner"`
	TeamCount   int    `json:"teamCount"`
	MemberCount int    `json:"memberCount"`
}

type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	TeamCode    string `json:"teamCode"`
	AgeGroup    string `json:"ageGroup"`
	Club        Ref    `json:"club"`
	Manager     Ref    `json:"manager"`
	PlayerCount int    `json:"playerCount"`
	MemberCount int    `json:"memberCount"`
}

type Player struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Position      *string `json:"position"`
	JerseyNumber  *int    `json:"jerseyNumber"`
	TeamID        int64   `json:"teamId"`
	MatchesPlayed int     `json:"matchesPlayed"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	YellowCards   int     `json:"yellowCards"`
	RedCards      int     `json:"redCards"`
	GoalsPerMatch float64 `json:"goalsPerMatch"`
	TotalCards    int     `json:"totalCards"`
}

type TeamStats struct {
	PlayerCount int            `json:"playerCount"`
	Goals       int            `json:"goals"`
	Assists     int            `json:"assists"`
	ByPosition  map[string]int `json:"byPosition"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

var (
	clubCodePattern = regexp.MustCompile(`^(EAGLES|LIONS|TIGERS|BEARS|WOLVES|HAWKS|STORM|FIRE|THUNDER|LIGHTNING)[0-9]{4}$`)
	teamCodePattern = regexp.MustCompile(`^(SQUAD|TEAM|LIONS|TIGERS|EAGLES|HAWKS|STORM|FIRE|STARS|UNITED)[0-9]{4}$`)
)

// TestE2E_CompleteWorkflow тестирует полный сценарий: пользователь, клуб, команда, игроки
func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	// Настраиваем тестовое окружение
	env := SetupTestEnvironment(t)
	defer env.Cleanup(t)

	// Ждем пока приложение будет готово
	env.WaitForHealthCheck(t)

	t.Run("Health Check", func(t *testing.T) {
		resp := env.MakeRequest(t, http.MethodGet, "/api/health", nil)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "GreenLink backend is running", string(body))
	})

	var owner User
	t.Run("Signup", func(t *testing.T) {
		status := env.DoJSON(t, http.MethodPost, "/api/auth/signup", SignupRequest{
			Username: "owner",
			Email:    "owner@example.com",
			Password: "secret-pass",
			FullName: "Olga Owner",
			Role:     "MANAGER",
		}, &owner)

		require.Equal(t, http.StatusOK, status)
		assert.NotZero(t, owner.ID)
		assert.Equal(t, "owner", owner.Username)
		assert.Empty(t, owner.PasswordHash, "Password hash must never be returned")
	})

	t.Run("Signup Conflicts", func(t *testing.T) {
		var errResp ErrorResponse
		status := env.DoJSON(t, http.MethodPost, "/api/auth/signup", SignupRequest{
			Username: "owner", Email: "other@example.com", Password: "x", FullName: "X", Role: "PLAYER",
		}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Username already exists", errResp.Error)

		status = env.DoJSON(t, http.MethodPost, "/api/auth/signup", SignupRequest{
			Username: "other", Email: "owner@example.com", Password: "x", FullName: "X", Role: "PLAYER",
		}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Email already exists", errResp.Error)
	})

	t.Run("Login", func(t *testing.T) {
		var user User
		status := env.DoJSON(t, http.MethodPost, "/api/auth/login", LoginRequest{Username: "owner", Password: "secret-pass"}, &user)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, owner.ID, user.ID)

		var wrongPassword, unknownUser ErrorResponse
		assert.Equal(t, http.StatusBadRequest,
			env.DoJSON(t, http.MethodPost, "/api/auth/login", LoginRequest{Username: "owner", Password: "nope"}, &wrongPassword))
		assert.Equal(t, http.StatusBadRequest,
			env.DoJSON(t, http.MethodPost, "/api/auth/login", LoginRequest{Username: "ghost", Password: "nope"}, &unknownUser))
		assert.Equal(t, "Invalid username or password", wrongPassword.Error)
		assert.Equal(t, wrongPassword, unknownUser, "Unknown user must be indistinguishable from wrong password")
	})

	var club Club
	t.Run("Create Club", func(t *testing.T) {
		status := env.DoJSON(t, http.MethodPost, "/api/clubs", map[string]interface{}{
			"name":        "Riverside FC",
			"description": "Sunday league",
			"location":    "Riverside",
			"ownerId":     owner.ID,
		}, &club)

		require.Equal(t, http.StatusOK, status)
		assert.Regexp(t, clubCodePattern, club.ClubCode)
		assert.Equal(t, owner.ID, club.Owner.ID)
		assert.Equal(t, "Olga Owner", club.Owner.FullName)
		assert.Equal(t, "owner", club.Owner.Username)
	})

	t.Run("Create Club With Unknown Owner", func(t *testing.T) {
		var errResp ErrorResponse
		status := env.DoJSON(t, http.MethodPost, "/api/clubs", map[string]interface{}{
			"name": "Ghost FC", "ownerId": 999999,
		}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "User not found", errResp.Error)
	})

	var team Team
	t.Run("Create Team", func(t *testing.T) {
		var errResp ErrorResponse
		status := env.DoJSON(t, http.MethodPost, "/api/teams", map[string]interface{}{
			"name": "U18", "clubId": 999999, "managerId": 999999,
		}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Club not found", errResp.Error, "Club is checked before manager")

		status = env.DoJSON(t, http.MethodPost, "/api/teams", map[string]interface{}{
			"name": "U18", "clubId": club.ID, "managerId": 999999,
		}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Manager not found", errResp.Error)

		status = env.DoJSON(t, http.MethodPost, "/api/teams", map[string]interface{}{
			"name":      "Riverside U18",
			"ageGroup":  "Under-18",
			"clubId":    club.ID,
			"managerId": owner.ID,
		}, &team)
		require.Equal(t, http.StatusOK, status)
		assert.Regexp(t, teamCodePattern, team.TeamCode)
		assert.Equal(t, club.ID, team.Club.ID)
		assert.Equal(t, "Riverside FC", team.Club.Name)
		assert.Equal(t, owner.ID, team.Manager.ID)
	})

	var player Player
	t.Run("Players", func(t *testing.T) {
		position := "Forward"
		jersey := 9
		status := env.DoJSON(t, http.MethodPost, "/api/players", map[string]interface{}{
			"name": "Sam Striker", "position": position, "jerseyNumber": jersey, "teamId": team.ID,
		}, &player)
		require.Equal(t, http.StatusOK, status)
		assert.Zero(t, player.Goals)
		require.NotNil(t, player.Position)
		assert.Equal(t, position, *player.Position)

		var updated Player
		status = env.DoJSON(t, http.MethodPut, fmt.Sprintf("/api/players/%d", player.ID), map[string]interface{}{
			"name": "Sam Striker", "position": position, "jerseyNumber": 10,
			"matchesPlayed": 4, "goals": 6, "assists": 2, "yellowCards": 1, "redCards": 0,
		}, &updated)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 6, updated.Goals)
		assert.Equal(t, team.ID, updated.TeamID)
		assert.InDelta(t, 1.5, updated.GoalsPerMatch, 0.0001)
		assert.Equal(t, 1, updated.TotalCards)

		var errResp ErrorResponse
		status = env.DoJSON(t, http.MethodPut, fmt.Sprintf("/api/players/%d", player.ID), map[string]interface{}{
			"name": "Sam Striker", "goals": -1,
		}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Goals cannot be negative", errResp.Error)

		var players []Player
		status = env.DoJSON(t, http.MethodGet, fmt.Sprintf("/api/players/team/%d", team.ID), nil, &players)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, players, 1)
		assert.Equal(t, player.ID, players[0].ID)
	})

	t.Run("Team Stats", func(t *testing.T) {
		var stats TeamStats
		status := env.DoJSON(t, http.MethodGet, fmt.Sprintf("/api/teams/%d/stats", team.ID), nil, &stats)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 1, stats.PlayerCount)
		assert.Equal(t, 6, stats.Goals)
		assert.Equal(t, 1, stats.ByPosition["Forward"])
	})

	t.Run("Lookup By Code", func(t *testing.T) {
		var byCode Club
		status := env.DoJSON(t, http.MethodGet, "/api/clubs/code/"+club.ClubCode, nil, &byCode)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, club.ID, byCode.ID)
		assert.Equal(t, 1, byCode.TeamCount)
		assert.Equal(t, 0, byCode.MemberCount)

		var teamByCode Team
		status = env.DoJSON(t, http.MethodGet, "/api/teams/code/"+team.TeamCode, nil, &teamByCode)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 1, teamByCode.PlayerCount)
	})

	t.Run("Join Club Twice", func(t *testing.T) {
		status := env.DoJSON(t, http.MethodPost, "/api/clubs/code/"+club.ClubCode+"/join", map[string]interface{}{
			"userId": owner.ID,
		}, nil)
		require.Equal(t, http.StatusOK, status)

		var errResp ErrorResponse
		status = env.DoJSON(t, http.MethodPost, "/api/clubs/code/"+club.ClubCode+"/join", map[string]interface{}{
			"userId": owner.ID,
		}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "User is already a member of this club", errResp.Error)
	})

	t.Run("Delete Player Twice", func(t *testing.T) {
		var msg MessageResponse
		status := env.DoJSON(t, http.MethodDelete, fmt.Sprintf("/api/players/%d", player.ID), nil, &msg)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Player deleted", msg.Message)

		var errResp ErrorResponse
		status = env.DoJSON(t, http.MethodDelete, fmt.Sprintf("/api/players/%d", player.ID), nil, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Player not found", errResp.Error)
	})

	t.Run("Delete Club Cascades", func(t *testing.T) {
		status := env.DoJSON(t, http.MethodPost, "/api/players", map[string]interface{}{
			"name": "Goalie", "teamId": team.ID,
		}, nil)
		require.Equal(t, http.StatusOK, status)

		var msg MessageResponse
		status = env.DoJSON(t, http.MethodDelete, fmt.Sprintf("/api/clubs/%d", club.ID), nil, &msg)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Club deleted", msg.Message)

		var teams, players, members int
		require.NoError(t, env.DB.QueryRow(env.ctx, "SELECT COUNT(*) FROM teams WHERE club_id = $1", club.ID).Scan(&teams))
		require.NoError(t, env.DB.QueryRow(env.ctx, "SELECT COUNT(*) FROM players WHERE team_id = $1", team.ID).Scan(&players))
		require.NoError(t, env.DB.QueryRow(env.ctx, "SELECT COUNT(*) FROM club_members WHERE club_id = $1", club.ID).Scan(&members))
		assert.Zero(t, teams)
		assert.Zero(t, players)
		assert.Zero(t, members)

		var errResp ErrorResponse
		status = env.DoJSON(t, http.MethodGet, "/api/clubs/code/"+club.ClubCode, nil, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Club not found", errResp.Error)
	})
}

// TestE2E_ConcurrentClubCreation проверяет, что параллельно созданные клубы получают разные коды
func TestE2E_ConcurrentClubCreation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	env := SetupTestEnvironment(t)
	defer env.Cleanup(t)
	env.WaitForHealthCheck(t)

	var owner User
	require.Equal(t, http.StatusOK, env.DoJSON(t, http.MethodPost, "/api/auth/signup", SignupRequest{
		Username: "busy", Email: "busy@example.com", Password: "secret", FullName: "Busy Owner", Role: "ADMIN",
	}, &owner))

	const clubs = 30
	codes := make([]string, clubs)

	var wg sync.WaitGroup
	for i := 0; i < clubs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var club Club
			status := env.DoJSON(t, http.MethodPost, "/api/clubs", map[string]interface{}{
				"name": fmt.Sprintf("Club %d", i), "ownerId": owner.ID,
			}, &club)
			if assert.Equal(t, http.StatusOK, status) {
				codes[i] = club.ClubCode
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, clubs)
	for _, code := range codes {
		require.NotEmpty(t, code)
		assert.False(t, seen[code], "Duplicate club code %s", code)
		seen[code] = true
	}

	var listed []Club
	require.Equal(t, http.StatusOK, env.DoJSON(t, http.MethodGet, fmt.Sprintf("/api/clubs?ownerId=%d", owner.ID), nil, &listed))
	assert.Len(t, listed, clubs)
}
