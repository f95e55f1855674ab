package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos.
// La implementación corre dentro de una transacción con los claims RLS ya fijados,
// así que la base de datos filtra por organización aunque el filtro explícito falte.
type ProductRepository interface {
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]*entity.Product, error)
	CountByOrganization(ctx context.Context, organizationID string) (int, error)
}
