package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	pkgjwt "github.com/jhoicas/tienda-pos/pkg/jwt"
)

// Contrato persistido con el cliente: no renombrar ni cambiar atributos sin migración.
const (
	StaffSessionCookie = "staff_session"
	StaffSessionMaxAge = int(pkgjwt.CredentialTTL / time.Second)
)

// SessionTransport lleva la credencial de staff en una cookie HttpOnly.
// El navegador no puede leerla; el servidor la vuelve a verificar en cada request.
type SessionTransport struct {
	secure bool
}

// NewSessionTransport construye el transporte. secure=false solo en desarrollo local (http).
func NewSessionTransport(secure bool) *SessionTransport {
	return &SessionTransport{secure: secure}
}

// StartSession escribe la cookie con la credencial. Llamarlo dos veces reemplaza la cookie.
func (t *SessionTransport) StartSession(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     StaffSessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   StaffSessionMaxAge,
		Secure:   t.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// EndSession ordena al navegador descartar la cookie de inmediato, exista o no una sesión.
func (t *SessionTransport) EndSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     StaffSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		Secure:   t.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ReadSessionToken devuelve la credencial de la cookie. false si no hay sesión de staff
// (p. ej. request de un owner); no es un error.
func (t *SessionTransport) ReadSessionToken(c *fiber.Ctx) (string, bool) {
	token := c.Cookies(StaffSessionCookie)
	if token == "" {
		return "", false
	}
	return token, true
}
