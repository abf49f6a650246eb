package sqldb

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// ErrTxAborted is returned when a transaction could not be started or committed.
var ErrTxAborted = errors.New("transaction aborted")

// IsForeignKeyViolation reports whether err was raised by a foreign key constraint.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	// modernc.org/sqlite: "constraint failed: FOREIGN KEY constraint failed (787)"
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
