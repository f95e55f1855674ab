package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isInvalidTextRepresentation detecta 22P02 (p. ej. un id que no es UUID válido).
func isInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02"
	}
	return false
}
