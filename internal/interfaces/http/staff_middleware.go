package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/staffauth"
	"github.com/jhoicas/tienda-pos/internal/domain"
	pkgjwt "github.com/jhoicas/tienda-pos/pkg/jwt"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

// Locals keys de la sesión de staff en Fiber.
const (
	LocalStaffID        = "staff_id"
	LocalOrganizationID = "organization_id"
	LocalStaffRole      = "staff_role"
	LocalStaffClaims    = "staff_claims"
)

// sessionAuthenticator es el contrato mínimo que necesita el middleware.
// Lo implementa *staffauth.SessionUseCase.
type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*staffauth.Session, error)
}

// StaffSessionMiddleware lee la cookie de sesión de staff, verifica la credencial en cada
// request y carga la identidad en c.Locals.
//
// Comportamiento:
//   - 401 MISSING_SESSION  → no hay cookie.
//   - 401 INVALID_SESSION  → firma, expiración, audiencia, estructura o revocación; un solo mensaje.
//   - 503 SESSION_CHECK_FAILED → la lista de revocación no respondió.
func StaffSessionMiddleware(auth sessionAuthenticator, transport *SessionTransport, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := transport.ReadSessionToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "sesión de staff requerida"})
		}
		sess, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnexpected) {
				log.Error().Err(err).Str("path", c.Path()).Msg("verificación de sesión de staff")
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
			}
			log.Warn().Err(err).Str("path", c.Path()).Msg("sesión de staff rechazada")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "sesión inválida o expirada"})
		}
		c.Locals(LocalStaffID, sess.Identity.StaffID)
		c.Locals(LocalOrganizationID, sess.Identity.OrganizationID)
		c.Locals(LocalStaffRole, sess.Identity.StaffRole)
		c.Locals(LocalStaffClaims, sess.Claims)
		return c.Next()
	}
}

// RequireStaffRole autoriza según el rol de aplicación del staff. Usar DESPUÉS de StaffSessionMiddleware.
func RequireStaffRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetStaffRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "la sesión no trae staff_role"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
		}
		return c.Next()
	}
}

// GetStaffID devuelve el StaffID del contexto (después del middleware de sesión).
func GetStaffID(c *fiber.Ctx) string {
	return localString(c, LocalStaffID)
}

// GetOrganizationID devuelve la organización de la credencial.
func GetOrganizationID(c *fiber.Ctx) string {
	return localString(c, LocalOrganizationID)
}

// GetStaffRole devuelve el rol de aplicación del staff.
func GetStaffRole(c *fiber.Ctx) string {
	return localString(c, LocalStaffRole)
}

// GetStaffClaims devuelve los claims verificados, o nil.
func GetStaffClaims(c *fiber.Ctx) *pkgjwt.Claims {
	claims, _ := c.Locals(LocalStaffClaims).(*pkgjwt.Claims)
	return claims
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
