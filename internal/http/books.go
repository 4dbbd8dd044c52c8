package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/libshelf/catalog/internal/database/books"
	"github.com/libshelf/catalog/internal/database/reviews"
	"github.com/libshelf/catalog/internal/entities"
)

// BooksController serves the catalog listing, the add-book form and the
// book detail page.
type BooksController struct {
	books   *books.Repository
	reviews *reviews.Repository
}

func NewBooksController(books *books.Repository, reviews *reviews.Repository) *BooksController {
	return &BooksController{
		books:   books,
		reviews: reviews,
	}
}

// ListPage renders all books. An empty catalog renders an empty list.
func (controller *BooksController) ListPage(c *gin.Context) {
	all, err := controller.books.GetAll()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "books.html", gin.H{
		"Title": "Books",
		"Books": all,
	})
}

// NewPage renders the empty add-book form.
func (controller *BooksController) NewPage(c *gin.Context) {
	c.HTML(http.StatusOK, "addbook.html", gin.H{
		"Title": "Add book",
	})
}

// Create saves a book from the form fields and returns to the listing.
// Numeric fields fall back to zero when unparsable; presence is the only
// validation applied.
func (controller *BooksController) Create(c *gin.Context) {
	year, _ := strconv.Atoi(c.PostForm("year"))
	quantity, _ := strconv.Atoi(c.PostForm("quantity"))

	book := entities.Book{
		Title:       c.PostForm("title"),
		Author:      c.PostForm("author"),
		Year:        year,
		Quantity:    quantity,
		Description: c.PostForm("description"),
	}

	if err := controller.books.Save(&book); err != nil {
		c.String(http.StatusInternalServerError, "Error saving book: %s", err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/books")
}

// DetailPage renders one book with its reviews and an empty review form.
// Unknown or unparsable ids go back to the listing with no error shown.
func (controller *BooksController) DetailPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/books")
		return
	}

	book, err := controller.books.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusFound, "/books")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading book: %s", err.Error())
		return
	}

	bookReviews, err := controller.reviews.GetByBookID(book.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading reviews: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "book_detail.html", gin.H{
		"Title":   book.Title,
		"Book":    book,
		"Reviews": bookReviews,
	})
}
