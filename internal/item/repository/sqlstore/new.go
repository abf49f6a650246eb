package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"hardware-inventory/internal/item/repository"
	"hardware-inventory/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a database/sql backed Repository for the item domain.
// Queries are portable between sqlite and PostgreSQL.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l, now: func() time.Time { return time.Now().UTC() }}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/sqlstore.%s", method)
}
