package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/libshelf/catalog/internal/auth"
	"github.com/libshelf/catalog/internal/config"
	"github.com/libshelf/catalog/internal/database/books"
	"github.com/libshelf/catalog/internal/database/reviews"
)

// RouterConfig carries the router's dependencies.
type RouterConfig struct {
	Books          *books.Repository
	Reviews        *reviews.Repository
	AuthService    *auth.Service
	SessionManager *auth.SessionManager
	TemplatesPath  string
	WritePolicy    config.WritePolicy
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Session must be loaded before any handler touches it
	router.Use(cfg.SessionManager.SessionLoadSave())

	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	authController := auth.NewAuthController(cfg.AuthService, cfg.SessionManager)
	authController.RegisterRoutes(router)

	pages := NewPagesController(cfg.SessionManager)
	booksController := NewBooksController(cfg.Books, cfg.Reviews)
	reviewsController := NewReviewsController(cfg.Books, cfg.Reviews)

	requireLogin := cfg.SessionManager.RequireLogin()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"version": cfg.Version,
		})
	})

	router.GET("/", pages.Root)
	router.GET("/index", requireLogin, pages.Index)

	// Mutation routes are public by default; the authenticated write policy
	// puts them behind the same login gate as /index.
	gate := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.WritePolicy == config.WritePolicyAuthenticated {
			return []gin.HandlerFunc{requireLogin, h}
		}
		return []gin.HandlerFunc{h}
	}

	router.GET("/books", booksController.ListPage)
	router.GET("/books/new", gate(booksController.NewPage)...)
	router.POST("/books", gate(booksController.Create)...)
	router.GET("/books/detail", booksController.DetailPage)
	router.POST("/reviews/add", gate(reviewsController.Add)...)

	return router
}
