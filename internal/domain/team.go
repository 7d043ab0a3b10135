package domain

import "time"

// Team представляет команду внутри клуба
type Team struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	TeamCode    string    `json:"teamCode"`
	AgeGroup    string    `json:"ageGroup"` // "Under-18", "Senior" и т.п.
	Description string    `json:"description"`
	ClubID      int64     `json:"clubId"`
	ManagerID   int64     `json:"managerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TeamCounts содержит количество игроков и участников команды
type TeamCounts struct {
	PlayerCount int `json:"playerCount"`
	MemberCount int `json:"memberCount"`
}

// TeamDetails представляет команду со ссылками на клуб и менеджера
type TeamDetails struct {
	Team    *Team
	Club    ClubRef
	Manager UserRef
	Counts  TeamCounts
}

// TeamFilter задает фильтры списка команд клуба
type TeamFilter struct {
	Name     string // Подстрока названия без учета регистра
	AgeGroup string
}

// TeamMember представляет членство пользователя в команде
type TeamMember struct {
	ID       int64     `json:"id"`
	TeamID   int64     `json:"teamId"`
	UserID   int64     `json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`
}

// TeamStats содержит агрегированную статистику игроков команды
type TeamStats struct {
	TeamID        int64          `json:"teamId"`
	PlayerCount   int            `json:"playerCount"`
	MatchesPlayed int            `json:"matchesPlayed"`
	Goals         int            `json:"goals"`
	Assists       int            `json:"assists"`
	YellowCards   int            `json:"yellowCards"`
	RedCards      int            `json:"redCards"`
	ByPosition    map[string]int `json:"byPosition"`
}
