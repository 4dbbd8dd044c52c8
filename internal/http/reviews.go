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

// ReviewsController handles review submission.
type ReviewsController struct {
	books   *books.Repository
	reviews *reviews.Repository
}

func NewReviewsController(books *books.Repository, reviews *reviews.Repository) *ReviewsController {
	return &ReviewsController{
		books:   books,
		reviews: reviews,
	}
}

// Add attaches a review to an existing book. When the book is absent the
// review is silently dropped; either way the caller lands back on the
// detail page, which itself falls through to /books for unknown ids.
func (controller *ReviewsController) Add(c *gin.Context) {
	bookIDParam := c.PostForm("bookId")
	redirect := "/books/detail?id=" + bookIDParam

	bookID, err := strconv.ParseUint(bookIDParam, 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, redirect)
		return
	}

	book, err := controller.books.GetByID(uint(bookID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusFound, redirect)
			return
		}
		c.String(http.StatusInternalServerError, "Error loading book: %s", err.Error())
		return
	}

	review := entities.Review{
		BookID:   book.ID,
		Reviewer: c.PostForm("reviewer"),
		Content:  c.PostForm("content"),
	}

	if err := controller.reviews.Create(&review); err != nil {
		c.String(http.StatusInternalServerError, "Error saving review: %s", err.Error())
		return
	}

	c.Redirect(http.StatusFound, redirect)
}
