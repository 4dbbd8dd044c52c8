package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/libshelf/catalog/internal/config"
	"github.com/libshelf/catalog/internal/database/users"
	"github.com/libshelf/catalog/internal/entities"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
)

// Service handles authentication and registration.
type Service struct {
	users  *users.Repository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, cfg config.Auth) *Service {
	return &Service{
		users:  repo,
		config: cfg,
	}
}

// Register creates a new account with the default "user" role.
// Uniqueness is a lookup-before-insert: two concurrent registrations with the
// same name can both succeed. Known race, kept as-is.
func (s *Service) Register(username, password string) (*entities.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	_, err := s.users.GetByUsername(username)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	stored, err := EncodePassword(s.config.PasswordScheme, password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to encode password: %w", err)
	}

	user, err := s.users.Create(username, stored, entities.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate validates credentials and returns the user.
func (s *Service) Authenticate(username, password string) (*entities.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(s.config.PasswordScheme, password, user.Password); err != nil {
		return nil, err
	}

	return user, nil
}
