package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidar/greenlink/internal/domain"
	"github.com/aidar/greenlink/internal/repository"
)

// dummyPassword is hashed once per service so that a login for an unknown
// username costs one comparison, like a login with a wrong password.
const dummyPassword = "greenlink-dummy-password"

// SignupInput contains the fields of a new account
type SignupInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

// AuthService handles signup, login and profile lookups
type AuthService struct {
	userRepo  repository.UserRepository
	hasher    PasswordHasher
	dummyHash string
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher) (*AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		dummyHash: dummyHash,
	}, nil
}

// Signup registers a new user. The username is checked before the email.
// An empty role means PLAYER. Passwords are limited to MaxPasswordBytes bytes.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	if in.Role == "" {
		in.Role = domain.RolePlayer
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if len(in.Password) > MaxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Role:         in.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks credentials and returns the user profile.
// Unknown usernames and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.hasher.Compare(s.dummyHash, password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user %q: %w", username, err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user profile by ID
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
