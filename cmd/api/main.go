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

	"github.com/NadafMM/inventory-management-system-sub001/internal/application/category"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/product"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/stock"
	"github.com/NadafMM/inventory-management-system-sub001/internal/infrastructure/cache"
	"github.com/NadafMM/inventory-management-system-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/NadafMM/inventory-management-system-sub001/internal/interfaces/http"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/config"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	skuRepo := postgres.NewSkuRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Redis is optional; with no address configured the hierarchy reads go
	// straight to PostgreSQL.
	var hierCache category.Cache
	if cfg.Redis.Addr != "" {
		client, err := cache.New(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to Redis")
		}
		defer client.Close()
		hierCache = client
	}

	categoryUC := category.NewService(categoryRepo, txRunner, hierCache, log)
	productUC := product.NewService(productRepo, categoryRepo, skuRepo, log)
	skuUC := product.NewSkuService(skuRepo, productRepo, log)
	stockUC := stock.NewService(txRunner, skuRepo, txnRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Management API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		SkuUC:      skuUC,
		StockUC:    stockUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
