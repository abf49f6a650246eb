package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"hardware-inventory/internal/category/repository"
	"hardware-inventory/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a database/sql backed Repository for the category domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("category/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l, now: func() time.Time { return time.Now().UTC() }}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("category/repository/sqlstore.%s", method)
}
