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

	"github.com/jhoicas/Despachos-api/internal/application/auth"
	"github.com/jhoicas/Despachos-api/internal/application/dashboard"
	"github.com/jhoicas/Despachos-api/internal/application/dispatching"
	"github.com/jhoicas/Despachos-api/internal/application/ledger"
	"github.com/jhoicas/Despachos-api/internal/application/usecase"
	"github.com/jhoicas/Despachos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Despachos-api/internal/interfaces/http"
	"github.com/jhoicas/Despachos-api/pkg/config"
	"github.com/jhoicas/Despachos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	balanceRepo := postgres.NewStockBalanceRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	dispatchRepo := postgres.NewDispatchRepository(pool)
	rotationRepo := postgres.NewRotationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	masterDataUC := usecase.NewMasterDataUseCase(clientRepo, productRepo, warehouseRepo, driverRepo)
	ledgerUC := ledger.NewUseCase(txRunner, balanceRepo, movementRepo, clientRepo, productRepo, warehouseRepo)
	dispatchUC := dispatching.NewDispatchUseCase(txRunner, dispatchRepo, rotationRepo, balanceRepo, clientRepo, productRepo, warehouseRepo)
	rotationUC := dispatching.NewRotationUseCase(txRunner, rotationRepo, dispatchRepo, driverRepo)
	dashboardUC := dashboard.NewUseCase(dispatchRepo, movementRepo)

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
		Title:    "Despachos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		MasterDataUC: masterDataUC,
		LedgerUC:     ledgerUC,
		DispatchUC:   dispatchUC,
		RotationUC:   rotationUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
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
