package entities

import "time"

// User roles
const (
	RoleUser = "user"
)

// Book is a catalog entry. Books are created through the add-book form and
// replaced wholesale on save; nothing deletes them.
type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"index;size:512" json:"title"`
	Author      string    `gorm:"index;size:256" json:"author"`
	Year        int       `json:"year"`
	Quantity    int       `json:"quantity"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// User is a registered account. Username uniqueness is enforced by a
// lookup-before-insert in the auth service, not by a database constraint, so
// two concurrent registrations with the same name can both land. Known
// weakness, kept as-is.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;size:100" json:"username"`
	Password  string    `gorm:"size:256" json:"-"`
	Role      string    `gorm:"size:20" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Review belongs to exactly one Book via BookID. The Book side carries no
// back-collection; reviews for a book are fetched with a finder.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookID    uint      `gorm:"index" json:"book_id"`
	Reviewer  string    `gorm:"size:256" json:"reviewer"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

func (User) TableName() string {
	return "users"
}

func (Review) TableName() string {
	return "reviews"
}
