package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Contrato con el motor de políticas RLS de la base de datos.
// Las políticas leen auth.jwt() -> 'app_metadata' ->> 'organization_id' y exigen
// role/aud = "authenticated"; cualquier cambio aquí rompe la autorización en silencio.
const (
	RoleAuthenticated     = "authenticated"
	AudienceAuthenticated = "authenticated"
)

// ErrDecode se devuelve cuando el conjunto de claims no tiene la forma esperada.
var ErrDecode = errors.New("jwt: claims con estructura inválida")

// VerifiedStaffIdentity identidad de staff ya verificada por el flujo de PIN.
// StaffID y OrganizationID nunca están vacíos.
type VerifiedStaffIdentity struct {
	StaffID        string `json:"staff_id"`
	OrganizationID string `json:"organization_id"`
	StaffRole      string `json:"staff_role"`
}

// AppMetadata campo anidado donde la función de políticas busca el tenant.
type AppMetadata struct {
	OrganizationID string `json:"organization_id"`
}

// Claims forma externa del token, idéntica a la del token de un owner.
// Audience se serializa como string ("aud":"authenticated") y oculta al de RegisteredClaims.
type Claims struct {
	jwt.RegisteredClaims
	Audience    string       `json:"aud"`
	Role        string       `json:"role"`
	AppMetadata *AppMetadata `json:"app_metadata,omitempty"`
	StaffRole   string       `json:"staff_role"`
}

// GetAudience implementa jwt.Claims sobre el campo aud de tipo string.
func (c Claims) GetAudience() (jwt.ClaimStrings, error) {
	if c.Audience == "" {
		return nil, nil
	}
	return jwt.ClaimStrings{c.Audience}, nil
}

// Encode construye el conjunto de claims para una identidad. No fija iat/exp/jti.
func Encode(identity VerifiedStaffIdentity) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: identity.StaffID,
		},
		Audience:    AudienceAuthenticated,
		Role:        RoleAuthenticated,
		AppMetadata: &AppMetadata{OrganizationID: identity.OrganizationID},
		StaffRole:   identity.StaffRole,
	}
}

// Decode valida la estructura de los claims y devuelve la identidad.
// No verifica firma ni expiración.
func Decode(c *Claims) (VerifiedStaffIdentity, error) {
	switch {
	case c == nil:
		return VerifiedStaffIdentity{}, fmt.Errorf("%w: claims nulos", ErrDecode)
	case c.Subject == "":
		return VerifiedStaffIdentity{}, fmt.Errorf("%w: sub ausente", ErrDecode)
	case c.AppMetadata == nil || c.AppMetadata.OrganizationID == "":
		return VerifiedStaffIdentity{}, fmt.Errorf("%w: app_metadata.organization_id ausente", ErrDecode)
	case c.StaffRole == "":
		return VerifiedStaffIdentity{}, fmt.Errorf("%w: staff_role ausente", ErrDecode)
	case c.Role != RoleAuthenticated:
		return VerifiedStaffIdentity{}, fmt.Errorf("%w: role %q", ErrDecode, c.Role)
	case c.Audience != AudienceAuthenticated:
		return VerifiedStaffIdentity{}, fmt.Errorf("%w: aud %q", ErrDecode, c.Audience)
	}
	return VerifiedStaffIdentity{
		StaffID:        c.Subject,
		OrganizationID: c.AppMetadata.OrganizationID,
		StaffRole:      c.StaffRole,
	}, nil
}
