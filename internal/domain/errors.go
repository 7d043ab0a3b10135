package domain

import "errors"

// Kind классифицирует доменные ошибки
type Kind int

// Виды доменных ошибок
const (
	KindInternal     Kind = iota // Непредвиденная ошибка (по умолчанию)
	KindNotFound                 // Ссылка на id/код не разрешается
	KindConflict                 // Нарушение уникальности
	KindUnauthorized             // Неверные учетные данные
	KindInvalid                  // Невалидные входные данные
)

// String возвращает название вида ошибки
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindInvalid:
		return "INVALID"
	default:
		return "INTERNAL"
	}
}

// Error представляет доменную ошибку с видом и сообщением для клиента
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError создает новую доменную ошибку
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Доменные ошибки. Сообщения уходят клиенту как есть в поле error
var (
	// ErrUserNotFound возвращается когда пользователь (в том числе владелец клуба) не найден
	ErrUserNotFound = NewError(KindNotFound, "User not found")

	// ErrManagerNotFound возвращается когда менеджер команды не найден
	ErrManagerNotFound = NewError(KindNotFound, "Manager not found")

	// ErrClubNotFound возвращается когда клуб не найден
	ErrClubNotFound = NewError(KindNotFound, "Club not found")

	// ErrTeamNotFound возвращается когда команда не найдена
	ErrTeamNotFound = NewError(KindNotFound, "Team not found")

	// ErrPlayerNotFound возвращается когда игрок не найден
	ErrPlayerNotFound = NewError(KindNotFound, "Player not found")

	// ErrMemberNotFound возвращается когда членство в клубе или команде не найдено
	ErrMemberNotFound = NewError(KindNotFound, "Membership not found")

	// ErrUsernameTaken возвращается при регистрации с занятым username
	ErrUsernameTaken = NewError(KindConflict, "Username already exists")

	// ErrEmailTaken возвращается при регистрации с занятым email
	ErrEmailTaken = NewError(KindConflict, "Email already exists")

	// ErrAlreadyClubMember возвращается при повторном вступлении в клуб
	ErrAlreadyClubMember = NewError(KindConflict, "User is already a member of this club")

	// ErrAlreadyTeamMember возвращается при повторном вступлении в команду
	ErrAlreadyTeamMember = NewError(KindConflict, "User is already a member of this team")

	// ErrCodeTaken возвращается хранилищем, когда сгенерированный код уже занят
	ErrCodeTaken = NewError(KindConflict, "Code already taken")

	// ErrInvalidCredentials возвращается при неудачном логине.
	// Одинаково для неизвестного пользователя и неверного пароля
	ErrInvalidCredentials = NewError(KindUnauthorized, "Invalid username or password")

	// ErrInvalidRole возвращается при неизвестной роли
	ErrInvalidRole = NewError(KindInvalid, "Invalid role")

	// ErrPasswordTooLong возвращается, когда пароль длиннее 72 байт (предел bcrypt)
	ErrPasswordTooLong = NewError(KindInvalid, "Password is too long")

	// ErrInvalidStat возвращается при запросе лидеров по неизвестной статистике
	ErrInvalidStat = NewError(KindInvalid, "Invalid stat")

	// ErrCodeSpaceExhausted возвращается, когда генератор не нашел свободный код
	ErrCodeSpaceExhausted = NewError(KindInternal, "could not generate a unique code")
)

// KindOf возвращает вид доменной ошибки (KindInternal для прочих ошибок)
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

// IsClientError сообщает, можно ли показать сообщение ошибки клиенту
func IsClientError(err error) bool {
	switch KindOf(err) {
	case KindNotFound, KindConflict, KindUnauthorized, KindInvalid:
		return true
	default:
		return false
	}
}
