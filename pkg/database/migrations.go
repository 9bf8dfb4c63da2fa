package database

import (
	"context"
	"embed"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

//go:embed migrations
var migrationsFS embed.FS

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These back the incident search endpoint and cannot be expressed in the
// Ent schema.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_incidents_text_gin
		ON incidents USING gin(to_tsvector('english', COALESCE(summary, '') || ' ' || COALESCE(root_cause, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create incident text GIN index: %w", err)
	}

	return nil
}
