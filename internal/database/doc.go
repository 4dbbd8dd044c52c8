// Package database opens the catalog store and migrates its schema.
//
// Per-entity operations live in the subpackages:
//
//	books.NewRepository(db.DB)
//	users.NewRepository(db.DB)
//	reviews.NewRepository(db.DB)
package database
