// Package books provides database operations for the book catalog.
package books

import (
	"gorm.io/gorm"

	"github.com/libshelf/catalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts the book when its ID is zero, otherwise replaces the stored
// row in full. There is no partial-update path.
func (r *Repository) Save(book *entities.Book) error {
	return r.db.Save(book).Error
}

// GetByID retrieves a book by ID. Absent books surface as
// gorm.ErrRecordNotFound.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll returns every book in the catalog, order unspecified.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Find(&books).Error
	return books, err
}
