// Package users provides database operations for account management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByUsername(name)
package users

import (
	"gorm.io/gorm"

	"github.com/libshelf/catalog/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new user. The caller is responsible for the
// username-uniqueness lookup; the table itself carries no constraint.
func (r *Repository) Create(username, password, role string) (*entities.User, error) {
	user := &entities.User{
		Username: username,
		Password: password,
		Role:     role,
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (r *Repository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username.
func (r *Repository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the number of registered users.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Count(&count).Error
	return count, err
}
