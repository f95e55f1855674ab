package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// StaffRepository define el puerto de lectura de Staff para el flujo de PIN (DIP).
// Devuelve (nil, nil) si no existe.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Staff, error)
}
