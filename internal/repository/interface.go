package repository

import (
	"context"

	"github.com/aidar/greenlink/internal/domain"
)

// UserRepository определяет методы для работы с данными пользователей
type UserRepository interface {
	// Create сохраняет нового пользователя и заполняет ID и CreatedAt.
	// Возвращает ErrUsernameTaken или ErrEmailTaken при нарушении уникальности
	Create(ctx context.Context, user *domain.User) error

	// GetByID получает пользователя по ID
	GetByID(ctx context.Context, userID int64) (*domain.User, error)

	// GetByUsername получает пользователя по username
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsername проверяет, занят ли username
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail проверяет, занят ли email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ClubRepository определяет методы для работы с данными клубов
type ClubRepository interface {
	// Create сохраняет новый клуб и заполняет ID и временные метки.
	// Возвращает ErrCodeTaken если club_code уже занят, ErrUserNotFound если нет владельца
	Create(ctx context.Context, club *domain.Club) error

	// GetByID получает клуб по ID
	GetByID(ctx context.Context, clubID int64) (*domain.Club, error)

	// GetByCode получает клуб по коду
	GetByCode(ctx context.Context, clubCode string) (*domain.Club, error)

	// ExistsByCode проверяет, занят ли код клуба
	ExistsByCode(ctx context.Context, clubCode string) (bool, error)

	// List возвращает клубы по фильтру, упорядоченные по ID
	List(ctx context.Context, filter domain.ClubFilter) ([]*domain.Club, error)

	// Counts возвращает количество команд и участников клуба
	Counts(ctx context.Context, clubID int64) (*domain.ClubCounts, error)

	// Delete удаляет клуб вместе с командами, их игроками и всеми членствами
	Delete(ctx context.Context, clubID int64) error
}

// TeamRepository определяет методы для работы с данными команд
type TeamRepository interface {
	// Create сохраняет новую команду и заполняет ID и временные метки.
	// Возвращает ErrCodeTaken если team_code уже занят
	Create(ctx context.Context, team *domain.Team) error

	// GetByID получает команду по ID
	GetByID(ctx context.Context, teamID int64) (*domain.Team, error)

	// GetByCode получает команду по коду
	GetByCode(ctx context.Context, teamCode string) (*domain.Team, error)

	// ExistsByCode проверяет, занят ли код команды
	ExistsByCode(ctx context.Context, teamCode string) (bool, error)

	// ListByClub возвращает команды клуба по фильтру
	ListByClub(ctx context.Context, clubID int64, filter domain.TeamFilter) ([]*domain.Team, error)

	// ListByManager возвращает команды, которыми управляет пользователь
	ListByManager(ctx context.Context, managerID int64) ([]*domain.Team, error)

	// Counts возвращает количество игроков и участников команды
	Counts(ctx context.Context, teamID int64) (*domain.TeamCounts, error)

	// Delete удаляет команду вместе с игроками и членствами
	Delete(ctx context.Context, teamID int64) error
}

// PlayerRepository определяет методы для работы с данными игроков
type PlayerRepository interface {
	// Create сохраняет нового игрока и заполняет ID
	Create(ctx context.Context, player *domain.Player) error

	// GetByID получает игрока по ID
	GetByID(ctx context.Context, playerID int64) (*domain.Player, error)

	// ListByTeam возвращает игроков команды по фильтру, упорядоченных по ID
	ListByTeam(ctx context.Context, teamID int64, filter domain.PlayerFilter) ([]*domain.Player, error)

	// Update перезаписывает изменяемые поля игрока (команда не меняется)
	Update(ctx context.Context, player *domain.Player) error

	// Delete удаляет игрока
	Delete(ctx context.Context, playerID int64) error

	// Leaders возвращает до limit игроков команды, отсортированных по статистике
	Leaders(ctx context.Context, teamID int64, stat domain.PlayerStat, limit int) ([]*domain.Player, error)

	// TeamStats возвращает агрегированную статистику игроков команды
	TeamStats(ctx context.Context, teamID int64) (*domain.TeamStats, error)
}

// MembershipRepository определяет методы для работы с членством в клубах и командах
type MembershipRepository interface {
	// AddClubMember добавляет пользователя в клуб.
	// Возвращает ErrAlreadyClubMember при повторном добавлении
	AddClubMember(ctx context.Context, member *domain.ClubMember) error

	// GetClubMember получает членство пользователя в клубе
	GetClubMember(ctx context.Context, clubID, userID int64) (*domain.ClubMember, error)

	// ListClubMembers возвращает участников клуба (role пустая - все роли)
	ListClubMembers(ctx context.Context, clubID int64, role domain.ClubRole) ([]*domain.ClubMember, error)

	// ListUserClubs возвращает все членства пользователя в клубах
	ListUserClubs(ctx context.Context, userID int64) ([]*domain.ClubMember, error)

	// UpdateClubMemberRole меняет роль участника клуба
	UpdateClubMemberRole(ctx context.Context, clubID, userID int64, role domain.ClubRole) error

	// RemoveClubMember удаляет пользователя из клуба
	RemoveClubMember(ctx context.Context, clubID, userID int64) error

	// AddTeamMember добавляет пользователя в команду.
	// Возвращает ErrAlreadyTeamMember при повторном добавлении
	AddTeamMember(ctx context.Context, member *domain.TeamMember) error

	// ListTeamMembers возвращает участников команды
	ListTeamMembers(ctx context.Context, teamID int64) ([]*domain.TeamMember, error)

	// RemoveTeamMember удаляет пользователя из команды
	RemoveTeamMember(ctx context.Context, teamID, userID int64) error
}

// Store объединяет все репозитории одного хранилища
type Store struct {
	Users       UserRepository
	Clubs       ClubRepository
	Teams       TeamRepository
	Players     PlayerRepository
	Memberships MembershipRepository
}
