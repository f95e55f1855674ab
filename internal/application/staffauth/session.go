package staffauth

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	pkgjwt "github.com/jhoicas/tienda-pos/pkg/jwt"
)

// Verifier lo implementa *jwt.Signer.
type Verifier interface {
	Inspect(token string) (*pkgjwt.Claims, pkgjwt.VerifiedStaffIdentity, error)
}

// Session resultado de autenticar una credencial de staff.
type Session struct {
	Identity pkgjwt.VerifiedStaffIdentity
	Claims   *pkgjwt.Claims
}

// SessionUseCase valida credenciales de staff en cada request y gestiona su revocación.
// No guarda estado: cada llamada verifica la credencial desde cero.
type SessionUseCase struct {
	verifier Verifier
	revoked  repository.RevocationStore
	now      func() time.Time
}

// NewSessionUseCase construye el caso de uso. revoked puede ser nil (sin lista de revocación).
func NewSessionUseCase(verifier Verifier, revoked repository.RevocationStore) *SessionUseCase {
	if revoked == nil {
		revoked = NopRevocationStore{}
	}
	return &SessionUseCase{verifier: verifier, revoked: revoked, now: time.Now}
}

// Authenticate verifica la credencial y consulta la lista de revocación.
// Errores: domain.ErrInvalidCredential (firma, expiración, audiencia, estructura),
// domain.ErrRevokedCredential, o domain.ErrUnexpected si la lista no responde.
func (uc *SessionUseCase) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, identity, err := uc.verifier.Inspect(token)
	if err != nil {
		return nil, err
	}
	revoked, err := uc.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnexpected, err)
	}
	if revoked {
		return nil, domain.ErrRevokedCredential
	}
	return &Session{Identity: identity, Claims: claims}, nil
}

// Revoke agrega la credencial a la lista de revocación hasta su expiración natural.
// Una credencial que ya no verifica no necesita revocarse y no es error.
func (uc *SessionUseCase) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, _, err := uc.verifier.Inspect(token)
	if err != nil {
		return nil
	}
	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(uc.now())
	}
	if err := uc.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnexpected, err)
	}
	return nil
}

// NopRevocationStore lista vacía: sin Redis las sesiones solo terminan por expiración o logout local.
type NopRevocationStore struct{}

// Revoke no hace nada.
func (NopRevocationStore) Revoke(context.Context, string, time.Duration) error { return nil }

// IsRevoked siempre false.
func (NopRevocationStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }
