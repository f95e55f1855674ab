package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsInvalidTextRepresentation(t *testing.T) {
	uuidErr := &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}
	assert.True(t, isInvalidTextRepresentation(uuidErr))
	assert.True(t, isInvalidTextRepresentation(fmt.Errorf("get staff by id: %w", uuidErr)))
	assert.False(t, isInvalidTextRepresentation(&pgconn.PgError{Code: "42501"}))
	assert.False(t, isInvalidTextRepresentation(errors.New("otra cosa")))
	assert.False(t, isInvalidTextRepresentation(nil))
}
