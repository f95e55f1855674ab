package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-pos/internal/application/staffauth"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PinLogin  *staffauth.PinLoginUseCase
	Session   *staffauth.SessionUseCase
	ProductUC *usecase.ProductUseCase
	Transport *SessionTransport
	Logger    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	log := deps.Logger.Named("http")

	// Sesión de staff (público)
	staff := api.Group("/staff")
	staffHandler := NewStaffHandler(deps.PinLogin, deps.Session, deps.Transport, log)
	staff.Post("/pin-login", staffHandler.PinLogin)
	staff.Post("/session", staffHandler.EstablishSession)
	staff.Delete("/session", staffHandler.EndSession)
	staff.Post("/logout", staffHandler.EndSession)

	// Rutas protegidas (requieren cookie de sesión de staff, verificada en cada request)
	requireSession := StaffSessionMiddleware(deps.Session, deps.Transport, log)
	staff.Get("/me", requireSession, staffHandler.Me)

	productHandler := NewProductHandler(deps.ProductUC, log)
	staff.Get("/products", requireSession, RequireStaffRole(entity.StaffRoleStaff, entity.StaffRoleManager), productHandler.List)
}
