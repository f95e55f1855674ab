package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura de productos. Pensado para usarse con la tx de RLSRunner:
// el WHERE por organización es redundante con la política, pero evita depender solo de ella.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListByOrganization lista productos de la organización con paginación.
func (r *ProductRepo) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, organization_id, category_id, sku, name, price, cost, stock, created_at, updated_at
		FROM products WHERE organization_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.CategoryID, &p.SKU, &p.Name, &p.Price, &p.Cost,
			&p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByOrganization total de productos visibles para la organización.
func (r *ProductRepo) CountByOrganization(ctx context.Context, organizationID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE organization_id = $1`, organizationID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
