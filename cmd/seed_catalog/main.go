// Command seed_catalog creates a catalog database with sample public domain books.
// Usage: go run cmd/seed_catalog/main.go [-db path/to/catalog.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/libshelf/catalog/internal/auth"
	"github.com/libshelf/catalog/internal/config"
	"github.com/libshelf/catalog/internal/database"
	"github.com/libshelf/catalog/internal/database/books"
	"github.com/libshelf/catalog/internal/database/reviews"
	"github.com/libshelf/catalog/internal/database/users"
	"github.com/libshelf/catalog/internal/entities"
)

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the catalog database file")
	flag.Parse()

	log.Printf("Seeding catalog database at %s...", *dbPath)

	// Delete existing database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	cfg := config.NewConfig()
	authService := auth.NewService(users.NewRepository(db.DB), cfg.Auth)

	if _, err := authService.Register("demo", "demo"); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created user demo/demo")

	booksRepo := books.NewRepository(db.DB)
	reviewsRepo := reviews.NewRepository(db.DB)

	for _, seed := range seedBooks() {
		book := seed.book
		if err := booksRepo.Save(&book); err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s", book.Title, book.Author)

		for _, review := range seed.reviews {
			review.BookID = book.ID
			if err := reviewsRepo.Create(&review); err != nil {
				log.Printf("Failed to save review for %s: %v", book.Title, err)
			}
		}
	}

	log.Println("Catalog seeded successfully!")
}

type seedBook struct {
	book    entities.Book
	reviews []entities.Review
}

func seedBooks() []seedBook {
	return []seedBook{
		{
			book: entities.Book{
				Title:       "The Count of Monte Cristo",
				Author:      "Alexandre Dumas",
				Year:        1844,
				Quantity:    3,
				Description: "Edmond Dantes is wrongfully imprisoned, escapes, and sets out to reward loyalty and punish betrayal.",
			},
			reviews: []entities.Review{
				{Reviewer: "demo", Content: "The definitive revenge story. Long but never slow."},
				{Reviewer: "marge", Content: "Loved the prison chapters, lost track of the conspirators at the end."},
			},
		},
		{
			book: entities.Book{
				Title:       "Frankenstein",
				Author:      "Mary Shelley",
				Year:        1818,
				Quantity:    2,
				Description: "Victor Frankenstein brings a creature to life and abandons it, with consequences for everyone he loves.",
			},
			reviews: []entities.Review{
				{Reviewer: "demo", Content: "The creature is the most sympathetic character in the book."},
			},
		},
		{
			book: entities.Book{
				Title:       "The Time Machine",
				Author:      "H. G. Wells",
				Year:        1895,
				Quantity:    1,
				Description: "A Victorian inventor travels to the year 802,701 and finds humanity split into Eloi and Morlocks.",
			},
		},
		{
			book: entities.Book{
				Title:       "Meditations",
				Author:      "Marcus Aurelius",
				Year:        180,
				Quantity:    5,
				Description: "Private notes of a Roman emperor on how to live, written for no audience.",
			},
		},
	}
}
