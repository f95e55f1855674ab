package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/tienda-pos/internal/application/staffauth"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/tienda-pos/internal/interfaces/http"
	"github.com/jhoicas/tienda-pos/pkg/config"
	pkgjwt "github.com/jhoicas/tienda-pos/pkg/jwt"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	signer, err := pkgjwt.NewSigner(cfg.JWT.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("firmador de credenciales de staff")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Lista de revocación: sin REDIS_ADDR las sesiones terminan solo por expiración o logout local.
	var revoked repository.RevocationStore = staffauth.NopRevocationStore{}
	if cfg.Redis.Enabled() {
		rdb, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rdb.Close()
		revoked = redisstore.NewRevocationStore(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("lista de revocación de staff habilitada")
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: revocación de credenciales de staff deshabilitada")
	}

	staffRepo := postgres.NewStaffRepository(pool)
	rlsRunner := postgres.NewRLSRunner(pool)

	pinLoginUC := staffauth.NewPinLoginUseCase(staffRepo, signer)
	sessionUC := staffauth.NewSessionUseCase(signer, revoked)
	productUC := usecase.NewProductUseCase(rlsRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PinLogin:  pinLoginUC,
		Session:   sessionUC,
		ProductUC: productUC,
		Transport: httpRouter.NewSessionTransport(!cfg.App.IsDevelopment()),
		Logger:    log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
