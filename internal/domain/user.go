package domain

import "time"

// Role представляет роль пользователя в приложении
type Role string

// Возможные роли пользователя
const (
	RolePlayer  Role = "PLAYER"
	RoleCoach   Role = "COACH"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Valid проверяет, что роль известна
func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// User представляет зарегистрированного пользователя.
// PasswordHash никогда не сериализуется
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserRef представляет краткую ссылку на пользователя во вложенных ответах
type UserRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username,omitempty"`
}

// Ref возвращает краткую ссылку на пользователя
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, FullName: u.FullName, Username: u.Username}
}
