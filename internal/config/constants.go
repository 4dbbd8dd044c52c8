package config

// DefaultDatabasePath is the default path for the catalog database
const DefaultDatabasePath = "./library-catalog.db"
