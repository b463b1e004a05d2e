package db

import "embed"

// migrationsFS holds one migrations directory per Goose dialect.
//
//go:embed migrations
var migrationsFS embed.FS
