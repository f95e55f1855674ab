package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL.
// Se usa antes de existir una credencial (login por PIN), por eso corre con el rol del pool
// y no dentro de RLSRunner.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador de persistencia para staff.
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// GetByID obtiene un staff por ID. Devuelve (nil, nil) si no existe.
func (r *StaffRepo) GetByID(ctx context.Context, id string) (*entity.Staff, error) {
	query := `
		SELECT id, organization_id, name, pin_hash, role, status, created_at, updated_at
		FROM staff WHERE id = $1`
	var s entity.Staff
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.OrganizationID, &s.Name, &s.PinHash, &s.Role, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidTextRepresentation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff by id: %w", err)
	}
	return &s, nil
}
