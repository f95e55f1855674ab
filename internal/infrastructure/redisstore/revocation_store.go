package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	"github.com/jhoicas/tienda-pos/pkg/config"
)

var _ repository.RevocationStore = (*RevocationStore)(nil)

const keyPrefix = "revoked:staff:"

// RevocationStore lista de jti revocados sobre Redis. Cada clave vive lo mismo que le
// quedaba a la credencial, así la lista nunca crece más allá de las sesiones vigentes.
type RevocationStore struct {
	client redis.Cmdable
}

// NewClient conecta a Redis con la configuración de la app.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewRevocationStore construye el store sobre un cliente (o pipeline) de go-redis.
func NewRevocationStore(client redis.Cmdable) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marca el jti como revocado. ttl <= 0 no hace nada: la credencial ya expiró.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revocar credencial: %w", err)
	}
	return nil
}

// IsRevoked indica si el jti está en la lista.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	err := s.client.Get(ctx, keyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consultar revocación: %w", err)
	}
	return true, nil
}
