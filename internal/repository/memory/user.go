package memory

import (
	"context"

	"github.com/aidar/greenlink/internal/domain"
)

// UserRepository реализует repository.UserRepository в памяти
type UserRepository struct {
	db *DB
}

// Create сохраняет нового пользователя; username и email уникальны
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	for _, u := range r.db.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}

	user.ID = r.db.allocID("users")
	user.CreatedAt = r.db.now()
	stored := *user
	r.db.users[user.ID] = &stored
	return nil
}

// GetByID возвращает пользователя по id
func (r *UserRepository) GetByID(_ context.Context, userID int64) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

// GetByUsername возвращает пользователя по username
func (r *UserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// ExistsByUsername сообщает, занят ли username
func (r *UserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByEmail сообщает, занят ли email
func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
