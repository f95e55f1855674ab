package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jhoicas/tienda-pos/internal/domain"
)

// CredentialTTL vigencia absoluta de la credencial de staff (sin renovación).
const CredentialTTL = 8 * time.Hour

var (
	// ErrMissingSecret el secreto de firma no está configurado. Cumple errors.Is(err, domain.ErrConfiguration).
	ErrMissingSecret = fmt.Errorf("%w: jwt: secret vacío", domain.ErrConfiguration)
	// ErrInvalidIdentity la identidad a firmar no trae staff, organización o rol.
	ErrInvalidIdentity = errors.New("jwt: identidad incompleta")
	// ErrInvalidCredential agrupa firma incorrecta, expiración, audiencia y claims mal formados.
	ErrInvalidCredential = domain.ErrInvalidCredential
	// ErrSigning fallo interno al firmar. Cumple errors.Is(err, domain.ErrUnexpected).
	ErrSigning = fmt.Errorf("%w: jwt: no se pudo firmar", domain.ErrUnexpected)
)

// Signer emite y verifica credenciales HS256 de staff. Es el único que conoce el secreto.
// Inmutable después de NewSigner; seguro para uso concurrente.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// Option configura un Signer.
type Option func(*Signer)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSigner construye el Signer con el secreto compartido con la base de datos.
func NewSigner(secret string, opts ...Option) (*Signer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	s := &Signer{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Mint firma una credencial para la identidad con iat = ahora y exp = iat + 8h.
// Los claims de tiempo tienen resolución de segundos: iat es el segundo en curso
// (truncado) y la credencial vence exactamente 8h después de ese segundo.
func (s *Signer) Mint(identity VerifiedStaffIdentity) (string, error) {
	if identity.StaffID == "" || identity.OrganizationID == "" || identity.StaffRole == "" {
		return "", ErrInvalidIdentity
	}
	now := s.now().Truncate(jwt.TimePrecision)
	claims := Encode(identity)
	claims.ID = uuid.NewString()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(CredentialTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}
	return signed, nil
}

// Verify valida firma, expiración y audiencia y devuelve la identidad decodificada.
// Cualquier fallo cumple errors.Is(err, ErrInvalidCredential); la causa concreta
// (p. ej. jwt.ErrTokenExpired) queda envuelta solo para logs.
func (s *Signer) Verify(tokenString string) (VerifiedStaffIdentity, error) {
	_, identity, err := s.Inspect(tokenString)
	return identity, err
}

// Inspect aplica las mismas comprobaciones que Verify y devuelve además los claims completos
// (jti, exp) para revocación y para propagarlos a la sesión RLS.
func (s *Signer) Inspect(tokenString string) (*Claims, VerifiedStaffIdentity, error) {
	if tokenString == "" {
		return nil, VerifiedStaffIdentity{}, fmt.Errorf("%w: token vacío", ErrInvalidCredential)
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(AudienceAuthenticated),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, VerifiedStaffIdentity{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if !token.Valid {
		return nil, VerifiedStaffIdentity{}, fmt.Errorf("%w: token no válido", ErrInvalidCredential)
	}
	identity, err := Decode(claims)
	if err != nil {
		return nil, VerifiedStaffIdentity{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	return claims, identity, nil
}

func (s *Signer) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
	}
	return s.secret, nil
}
