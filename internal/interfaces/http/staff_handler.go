package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/staffauth"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

// StaffHandler maneja login por PIN y ciclo de vida de la sesión de staff.
type StaffHandler struct {
	pin       *staffauth.PinLoginUseCase
	session   *staffauth.SessionUseCase
	transport *SessionTransport
	log       *logger.Logger
}

// NewStaffHandler construye el handler de staff.
func NewStaffHandler(pin *staffauth.PinLoginUseCase, session *staffauth.SessionUseCase, transport *SessionTransport, log *logger.Logger) *StaffHandler {
	return &StaffHandler{pin: pin, session: session, transport: transport, log: log}
}

// PinLogin godoc
// @Summary      Login de staff por PIN
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StaffPinLoginRequest  true  "staff_id, pin"
// @Success      200   {object}  dto.StaffPinLoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/staff/pin-login [post]
func (h *StaffHandler) PinLogin(c *fiber.Ctx) error {
	var in dto.StaffPinLoginRequest
	if err := parseAndValidate(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.pin.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "PIN o staff inválido"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "staff inactivo"})
		}
		h.log.Error().Err(err).Str("staff_id", in.StaffID).Msg("login por PIN")
		return internalError(c)
	}
	h.transport.StartSession(c, out.Token)
	h.log.Info().Str("staff_id", out.Staff.StaffID).Str("organization_id", out.Staff.OrganizationID).Msg("sesión de staff iniciada")
	return c.JSON(out)
}

// EstablishSession godoc
// @Summary      Establecer sesión de staff con una credencial emitida
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StaffSessionRequest  true  "token"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/staff/session [post]
func (h *StaffHandler) EstablishSession(c *fiber.Ctx) error {
	var in dto.StaffSessionRequest
	if err := parseAndValidate(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TOKEN_REQUIRED", Message: "token requerido"})
	}
	if _, err := h.session.Authenticate(c.UserContext(), in.Token); err != nil {
		if errors.Is(err, domain.ErrUnexpected) {
			h.log.Error().Err(err).Msg("establecer sesión de staff")
			return internalError(c)
		}
		h.log.Warn().Err(err).Bool("expired", errors.Is(err, gojwt.ErrTokenExpired)).Msg("credencial de staff rechazada")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
	}
	h.transport.StartSession(c, in.Token)
	return c.JSON(dto.OKResponse{OK: true})
}

// EndSession godoc
// @Summary      Cerrar sesión de staff
// @Tags         staff
// @Produce      json
// @Success      200   {object}  dto.OKResponse
// @Router       /api/staff/logout [post]
func (h *StaffHandler) EndSession(c *fiber.Ctx) error {
	if token, ok := h.transport.ReadSessionToken(c); ok {
		if err := h.session.Revoke(c.UserContext(), token); err != nil {
			h.log.Error().Err(err).Msg("revocar credencial de staff")
		}
	}
	h.transport.EndSession(c)
	return c.JSON(dto.OKResponse{OK: true})
}

// Me godoc
// @Summary      Identidad de la sesión de staff actual
// @Tags         staff
// @Produce      json
// @Success      200   {object}  dto.StaffIdentityResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/staff/me [get]
func (h *StaffHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.StaffIdentityResponse{
		StaffID:        GetStaffID(c),
		OrganizationID: GetOrganizationID(c),
		StaffRole:      GetStaffRole(c),
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
