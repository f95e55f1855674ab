package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	CategoryID     *string         `json:"category_id,omitempty"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
