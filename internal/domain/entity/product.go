package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// OrganizationID es la columna que filtra la política RLS.
type Product struct {
	ID             string
	OrganizationID string
	CategoryID     *string
	SKU            string // código único por organización
	Name           string
	Price          decimal.Decimal // precio de venta
	Cost           decimal.Decimal
	Stock          int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
