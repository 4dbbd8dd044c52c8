// Package auth implements account registration, login and cookie sessions
// for the catalog pages.
//
// Sessions are backed by scs with a sqlite3 store sharing the catalog
// database file. The login gate is a small middleware that redirects to
// /login when no session user is present.
package auth
