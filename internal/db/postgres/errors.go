package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// foreignKeyViolation is the class 23 integrity-constraint code raised when
// an insert references a missing parent row.
const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == foreignKeyViolation
	}
	return false
}
