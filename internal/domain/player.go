package domain

// PlayerStat задает статистику, по которой строится рейтинг игроков
type PlayerStat string

// Поддерживаемые статистики рейтинга
const (
	StatGoals   PlayerStat = "goals"
	StatAssists PlayerStat = "assists"
	StatMatches PlayerStat = "matches"
)

// Valid проверяет, что статистика поддерживается
func (s PlayerStat) Valid() bool {
	switch s {
	case StatGoals, StatAssists, StatMatches:
		return true
	}
	return false
}

// PlayerStats содержит накопленную статистику игрока (все значения неотрицательные)
type PlayerStats struct {
	MatchesPlayed int `json:"matchesPlayed"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
}

// Player представляет игрока команды
type Player struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Position     *string `json:"position"`
	JerseyNumber *int    `json:"jerseyNumber"`
	TeamID       int64   `json:"teamId"`
	PlayerStats
}

// GoalsPerMatch возвращает среднее количество голов за матч
func (p *Player) GoalsPerMatch() float64 {
	if p.MatchesPlayed <= 0 {
		return 0
	}
	return float64(p.Goals) / float64(p.MatchesPlayed)
}

// AssistsPerMatch возвращает среднее количество передач за матч
func (p *Player) AssistsPerMatch() float64 {
	if p.MatchesPlayed <= 0 {
		return 0
	}
	return float64(p.Assists) / float64(p.MatchesPlayed)
}

// TotalCards возвращает общее количество карточек
func (p *Player) TotalCards() int {
	return p.YellowCards + p.RedCards
}

// PlayerFilter задает фильтры списка игроков команды
type PlayerFilter struct {
	Position string
}
