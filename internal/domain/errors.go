package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrConfiguration falta configuración obligatoria: la aplicación no arranca.
	ErrConfiguration = errors.New("configuración inválida")

	// Sesión de staff: el handler traduce cada uno a un único código HTTP.
	ErrMalformedRequest  = errors.New("petición mal formada")
	ErrInvalidCredential = errors.New("credencial inválida")
	ErrRevokedCredential = errors.New("credencial revocada")
	ErrUnexpected        = errors.New("fallo interno inesperado")
)
