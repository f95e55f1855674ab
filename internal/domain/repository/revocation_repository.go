package repository

import (
	"context"
	"time"
)

// RevocationStore lista de credenciales revocadas, indexada por jti.
// Las entradas caducan solas cuando la credencial ya habría expirado.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
