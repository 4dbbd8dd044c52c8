package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/libshelf/catalog/internal/auth"
	"github.com/libshelf/catalog/internal/config"
	"github.com/libshelf/catalog/internal/database"
	"github.com/libshelf/catalog/internal/database/books"
	"github.com/libshelf/catalog/internal/database/reviews"
	"github.com/libshelf/catalog/internal/database/users"
	http_controllers "github.com/libshelf/catalog/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting library catalog v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	booksRepo := books.NewRepository(db.DB)
	usersRepo := users.NewRepository(db.DB)
	reviewsRepo := reviews.NewRepository(db.DB)

	authService := auth.NewService(usersRepo, cfg.Auth)

	// Sessions share the catalog's SQLite file
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	if cfg.Catalog.WritePolicy == config.WritePolicyAuthenticated {
		log.Printf("Catalog write policy: authenticated (mutation routes require login)")
	} else {
		log.Printf("Catalog write policy: open")
	}

	routerCfg := http_controllers.RouterConfig{
		Books:          booksRepo,
		Reviews:        reviewsRepo,
		AuthService:    authService,
		SessionManager: sessionManager,
		TemplatesPath:  cfg.UI.TemplatesPath,
		WritePolicy:    cfg.Catalog.WritePolicy,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
