package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"finance-assistant/internal/chatbot/repository"
	"finance-assistant/pkg/log"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for local development.
// Run Migrate on db first.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("chatbot/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Ping checks the database handle.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chatbot/repository/sqlite.%s", method)
}
