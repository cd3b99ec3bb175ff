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

	"github.com/jhoicas/stocktrack-api/internal/application/analytics"
	"github.com/jhoicas/stocktrack-api/internal/application/auth"
	"github.com/jhoicas/stocktrack-api/internal/application/inventory"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	"github.com/jhoicas/stocktrack-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stocktrack-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stocktrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stocktrack-api/internal/interfaces/http"
	"github.com/jhoicas/stocktrack-api/pkg/config"
	"github.com/jhoicas/stocktrack-api/pkg/logger"
)

// repos agrupa los puertos de persistencia que arma el arranque,
// sean de PostgreSQL o en memoria (modo demo).
type repos struct {
	company   repository.CompanyRepository
	user      repository.UserRepository
	reset     repository.PasswordResetRepository
	product   repository.ProductRepository
	warehouse repository.WarehouseRepository
	supplier  repository.SupplierRepository
	stock     repository.StockRepository
	movement  repository.MovementRepository
	sequence  repository.SequenceRepository
	txRunner  inventory.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("demo", cfg.App.Demo).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	if cfg.App.Demo {
		// Modo demo: repositorios en memoria con datos de demostración, sin PostgreSQL.
		store := memory.NewStore()
		memory.Seed(store)
		r = repos{
			company:   memory.NewCompanyRepo(store),
			user:      memory.NewUserRepo(store),
			reset:     memory.NewPasswordResetRepo(store),
			product:   memory.NewProductRepo(store),
			warehouse: memory.NewWarehouseRepo(store),
			supplier:  memory.NewSupplierRepo(store),
			stock:     memory.NewStockRepo(store),
			movement:  memory.NewMovementRepo(store),
			sequence:  memory.NewSequenceRepo(store),
			txRunner:  memory.NewTxRunner(store),
		}
		log.Info().Str("email", memory.DemoEmail).Msg("modo demo: cuenta de demostración disponible")
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			company:   postgres.NewCompanyRepository(pool),
			user:      postgres.NewUserRepository(pool),
			reset:     postgres.NewPasswordResetRepository(pool),
			product:   postgres.NewProductRepository(pool),
			warehouse: postgres.NewWarehouseRepository(pool),
			supplier:  postgres.NewSupplierRepository(pool),
			stock:     postgres.NewStockRepository(pool),
			movement:  postgres.NewMovementRepository(pool),
			sequence:  postgres.NewSequenceRepository(pool),
			txRunner:  postgres.NewTxRunner(pool),
		}
	}

	authUC := auth.NewUseCase(r.user, r.company, r.reset, auth.NewLogOTPSender(log), auth.Config{
		JWTSecret:       cfg.JWT.Secret,
		JWTIssuer:       cfg.JWT.Issuer,
		JWTExpMinutes:   cfg.JWT.Expiration,
		OTPExpMinutes:   cfg.Auth.OTPExpMinutes,
		ResetExpMinutes: cfg.Auth.ResetExpMinutes,
	})
	productUC := usecase.NewProductUseCase(r.product, r.stock)
	warehouseUC := usecase.NewWarehouseUseCase(r.warehouse)
	supplierUC := usecase.NewSupplierUseCase(r.supplier)
	movementUC := inventory.NewSubmitMovementUseCase(
		r.txRunner, r.movement, r.product, r.warehouse, r.supplier, r.sequence,
	)
	pdfUC := inventory.NewPDFUseCase(
		r.movement, r.company, r.supplier, r.warehouse, infrapdf.NewMarotoPDFGenerator(),
	)
	dashboardUC := analytics.NewDashboardUseCase(r.product, r.stock, r.movement, r.supplier)

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
		Title:    "StockTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		SupplierUC:  supplierUC,
		MovementUC:  movementUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
