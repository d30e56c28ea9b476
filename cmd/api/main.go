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

	_ "github.com/kvmarcenaria/marcenaria-api/docs"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/analytics"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/auth"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/billing"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/inventory"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/usecase"
	infrapdf "github.com/kvmarcenaria/marcenaria-api/internal/infrastructure/pdf"
	"github.com/kvmarcenaria/marcenaria-api/internal/infrastructure/postgres"
	httpRouter "github.com/kvmarcenaria/marcenaria-api/internal/interfaces/http"
	"github.com/kvmarcenaria/marcenaria-api/pkg/config"
	"github.com/kvmarcenaria/marcenaria-api/pkg/logger"
)

// @title           Marcenaria API
// @version         1.0
// @description     Gestão de oficina de marcenaria: clientes, catálogo, estoque e orçamentos.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Name:  cfg.App.Name,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	moveRepo := postgres.NewStockMoveRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	quoteItemRepo := postgres.NewQuoteItemRepository(pool)

	stockTx := postgres.NewStockTxRunner(pool)
	quoteTx := postgres.NewQuoteTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	stockUC := inventory.NewStockUseCase(stockTx, moveRepo, productRepo)
	quoteUC := billing.NewQuoteUseCase(quoteTx, quoteRepo, quoteItemRepo, clientRepo, productRepo)

	pdfGenerator := infrapdf.NewMarotoQuoteGenerator(cfg.PDF)
	quotePDFUC := billing.NewQuotePDFUseCase(quoteRepo, quoteItemRepo, clientRepo, pdfGenerator)

	dashboardUC := analytics.NewDashboardUseCase(clientRepo, productRepo, quoteRepo, moveRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Marcenaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		ProductUC:   productUC,
		StockUC:     stockUC,
		QuoteUC:     quoteUC,
		QuotePDFUC:  quotePDFUC,
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

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
