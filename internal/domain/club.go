package domain

import "time"

// Club представляет спортивный клуб
type Club struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ClubCode    string    `json:"clubCode"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	OwnerID     int64     `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ClubRef представляет краткую ссылку на клуб
type ClubRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Ref возвращает краткую ссылку на клуб
func (c *Club) Ref() ClubRef {
	return ClubRef{ID: c.ID, Name: c.Name}
}

// ClubCounts содержит количество команд и участников клуба
type ClubCounts struct {
	TeamCount   int `json:"teamCount"`
	MemberCount int `json:"memberCount"`
}

// ClubDetails представляет клуб вместе с владельцем и счетчиками
type ClubDetails struct {
	Club   *Club
	Owner  UserRef
	Counts ClubCounts
}

// ClubFilter задает фильтры списка клубов (пустые поля игнорируются)
type ClubFilter struct {
	Name    string // Подстрока названия без учета регистра
	OwnerID int64
}

// ClubRole представляет роль участника в клубе
type ClubRole string

// Роли участников клуба
const (
	ClubRoleOwner  ClubRole = "OWNER"
	ClubRoleAdmin  ClubRole = "ADMIN"
	ClubRoleCoach  ClubRole = "COACH"
	ClubRoleMember ClubRole = "MEMBER"
)

// Valid проверяет, что роль в клубе известна
func (r ClubRole) Valid() bool {
	switch r {
	case ClubRoleOwner, ClubRoleAdmin, ClubRoleCoach, ClubRoleMember:
		return true
	}
	return false
}

// ClubMember представляет членство пользователя в клубе
type ClubMember struct {
	ID       int64     `json:"id"`
	ClubID   int64     `json:"clubId"`
	UserID   int64     `json:"userId"`
	Role     ClubRole  `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
