package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	pkgjwt "github.com/jhoicas/tienda-pos/pkg/jwt"
)

var _ usecase.TenantTxRunner = (*RLSRunner)(nil)

// setClaimsSQL replica lo que hace PostgREST por request: las funciones auth.jwt()/auth.uid()
// leen request.jwt.claims y el rol activo decide qué políticas aplican.
const setClaimsSQL = `
	SELECT set_config('request.jwt.claims', $1, true),
	       set_config('request.jwt.claim.sub', $2, true),
	       set_config('role', $3, true)`

// RLSRunner ejecuta callbacks dentro de una transacción con los claims de la credencial
// fijados (SET LOCAL), de modo que las políticas RLS filtren por organización.
type RLSRunner struct {
	pool *pgxpool.Pool
}

// NewRLSRunner construye el runner con el pool.
func NewRLSRunner(pool *pgxpool.Pool) *RLSRunner {
	return &RLSRunner{pool: pool}
}

// RunAs abre la transacción, fija los claims y ejecuta fn con repos atados a la tx.
// Los set_config son locales a la transacción: al devolver la conexión al pool no queda rastro.
func (r *RLSRunner) RunAs(ctx context.Context, claims *pkgjwt.Claims, fn func(products repository.ProductRepository) error) error {
	args, err := claimsSettings(claims)
	if err != nil {
		return err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, setClaimsSQL, args...); err != nil {
		return fmt.Errorf("rls: fijar claims: %w", err)
	}

	if err := fn(NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// claimsSettings arma los parámetros de setClaimsSQL: claims JSON, sub y rol de base de datos.
func claimsSettings(claims *pkgjwt.Claims) ([]any, error) {
	if claims == nil {
		return nil, fmt.Errorf("rls: claims requeridos")
	}
	if claims.Role != pkgjwt.RoleAuthenticated {
		return nil, fmt.Errorf("rls: rol %q no permitido", claims.Role)
	}
	raw, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("rls: serializar claims: %w", err)
	}
	return []any{string(raw), claims.Subject, claims.Role}, nil
}
