package usecase

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	pkgjwt "github.com/jhoicas/tienda-pos/pkg/jwt"
)

// TenantTxRunner ejecuta fn dentro de una transacción donde la base de datos ve los claims
// de la credencial (RLS). Lo implementa postgres.RLSRunner.
type TenantTxRunner interface {
	RunAs(ctx context.Context, claims *pkgjwt.Claims, fn func(products repository.ProductRepository) error) error
}

// ProductUseCase lectura del catálogo para el punto de venta, siempre bajo RLS.
type ProductUseCase struct {
	runner TenantTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(runner TenantTxRunner) *ProductUseCase {
	return &ProductUseCase{runner: runner}
}

// List lista los productos de la organización de la credencial.
func (uc *ProductUseCase) List(ctx context.Context, claims *pkgjwt.Claims, limit, offset int) (*dto.ProductListResponse, error) {
	if claims == nil || claims.AppMetadata == nil || claims.AppMetadata.OrganizationID == "" {
		return nil, domain.ErrUnauthorized
	}
	orgID := claims.AppMetadata.OrganizationID

	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	err := uc.runner.RunAs(ctx, claims, func(products repository.ProductRepository) error {
		list, err := products.ListByOrganization(ctx, orgID, limit, offset)
		if err != nil {
			return err
		}
		total, err := products.CountByOrganization(ctx, orgID)
		if err != nil {
			return err
		}
		for _, p := range list {
			out.Items = append(out.Items, toProductResponse(p))
		}
		out.Page.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		CategoryID:     p.CategoryID,
		SKU:            p.SKU,
		Name:           p.Name,
		Price:          p.Price,
		Stock:          p.Stock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
