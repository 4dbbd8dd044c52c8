package config

import (
	"time"

	"github.com/spf13/viper"
)

// WritePolicy controls whether catalog mutation routes require a login.
type WritePolicy string

const (
	WritePolicyOpen          WritePolicy = "open"          // Anyone may add books and reviews (default)
	WritePolicyAuthenticated WritePolicy = "authenticated" // Mutation routes require a session
)

// PasswordScheme selects how stored passwords are compared on login.
type PasswordScheme string

const (
	PasswordSchemePlain  PasswordScheme = "plain"  // Exact string match (default)
	PasswordSchemeBcrypt PasswordScheme = "bcrypt" // bcrypt hash at registration, compare at login
)

type (
	Config struct {
		HTTP
		Database
		UI
		Auth
		Catalog
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesPath string
	}
	Auth struct {
		PasswordScheme  PasswordScheme
		BcryptCost      int
		SessionLifetime time.Duration
		SecureCookies   bool // Set to false for local dev without HTTPS
	}
	Catalog struct {
		WritePolicy WritePolicy
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")

	// Auth defaults
	v.SetDefault("auth_password_scheme", "plain")
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_session_lifetime", "24h")
	v.SetDefault("auth_secure_cookies", false)

	// Catalog defaults
	v.SetDefault("catalog_write_policy", "open")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
		},
		Auth: Auth{
			PasswordScheme:  PasswordScheme(v.GetString("AUTH_PASSWORD_SCHEME")),
			BcryptCost:      v.GetInt("AUTH_BCRYPT_COST"),
			SessionLifetime: v.GetDuration("AUTH_SESSION_LIFETIME"),
			SecureCookies:   v.GetBool("AUTH_SECURE_COOKIES"),
		},
		Catalog: Catalog{
			WritePolicy: WritePolicy(v.GetString("CATALOG_WRITE_POLICY")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
