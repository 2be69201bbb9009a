package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"finance-assistant/internal/chatbot/repository"
	"finance-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the chatbot domain.
// db is expected to be opened with the pgx stdlib driver.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("chatbot/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Ping checks the connection pool.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chatbot/repository/postgre.%s", method)
}
