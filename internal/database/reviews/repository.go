// Package reviews provides database operations for book reviews.
package reviews

import (
	"gorm.io/gorm"

	"github.com/libshelf/catalog/internal/entities"
)

// Repository handles all review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new review. The handler checks that the referenced book
// exists before calling this.
func (r *Repository) Create(review *entities.Review) error {
	return r.db.Create(review).Error
}

// GetByBookID returns all reviews attached to a book, order unspecified.
func (r *Repository) GetByBookID(bookID uint) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Where("book_id = ?", bookID).Find(&reviews).Error
	return reviews, err
}
