// Package memory реализует репозитории поверх хранимых в процессе таблиц
// сущностей по id. Проверяет те же ограничения уникальности, ссылок и каскадного
// удаления, что и схема PostgreSQL. Используется для локального запуска и тестов
package memory

import (
	"sync"
	"time"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/repository"
)

// DB хранит общие таблицы всех репозиториев в памяти
type DB struct {
	mu  sync.RWMutex
	now func() time.Time

	nextID map[string]int64

	users       map[int64]*domain.User
	clubs       map[int64]*domain.Club
	clubMembers map[int64]*domain.ClubMember
	teams       map[int64]*domain.Team
	teamMembers map[int64]*domain.TeamMember
	players     map[int64]*domain.Player
}

// Option настраивает DB
type Option func(*DB)

// WithClock подменяет источник времени для меток created_at/updated_at
func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		db.now = now
	}
}

// New создает пустое хранилище
func New(opts ...Option) *DB {
	db := &DB{
		now:         func() time.Time { return time.Now().UTC() },
		nextID:      map[string]int64{},
		users:       map[int64]*domain.User{},
		clubs:       map[int64]*domain.Club{},
		clubMembers: map[int64]*domain.ClubMember{},
		teams:       map[int64]*domain.Team{},
		teamMembers: map[int64]*domain.TeamMember{},
		players:     map[int64]*domain.Player{},
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// NewStore собирает все репозитории поверх одного хранилища
func NewStore(db *DB) *repository.Store {
	return &repository.Store{
		Users:       &UserRepository{db: db},
		Clubs:       &ClubRepository{db: db},
		Teams:       &TeamRepository{db: db},
		Players:     &PlayerRepository{db: db},
		Memberships: &MembershipRepository{db: db},
	}
}

// allocID возвращает следующий id таблицы. Вызывающий держит блокировку на запись
func (db *DB) allocID(table string) int64 {
	db.nextID[table]++
	return db.nextID[table]
}

// deleteTeamLocked удаляет команду вместе с игроками и участниками.
// Вызывающий держит блокировку на запись
func (db *DB) deleteTeamLocked(teamID int64) {
	for id, p := range db.players {
		if p.TeamID == teamID {
			delete(db.players, id)
		}
	}
	for id, m := range db.teamMembers {
		if m.TeamID == teamID {
			delete(db.teamMembers, id)
		}
	}
	delete(db.teams, teamID)
}
