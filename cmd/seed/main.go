package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logging"
	"github.com/nikolayk812/storefront/internal/seed"
	"go.uber.org/zap"
)

func main() {
	var (
		file    = flag.String("file", "", "Path to a products JSON array (defaults to the bundled catalog)")
		replace = flag.Bool("replace", false, "Drop the existing catalog before inserting")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.Named("seed")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger, *file, *replace); err != nil {
		logger.Error("seeding failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger, file string, replace bool) error {
	unit, err := domain.ParseCurrency(cfg.Store.Currency)
	if err != nil {
		return fmt.Errorf("domain.ParseCurrency: %w", err)
	}

	var products []domain.Product
	if file == "" {
		products, err = seed.DefaultProducts(unit)
	} else {
		products, err = seed.LoadProductsFile(file, unit)
	}
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	backend, err := app.OpenBackend(ctx, cfg.Database, unit, logger)
	if err != nil {
		return fmt.Errorf("app.OpenBackend: %w", err)
	}
	defer backend.Close()

	n, err := seed.Products(ctx, backend.Products, products, replace)
	if err != nil {
		return fmt.Errorf("seed.Products: %w", err)
	}

	if _, err := seed.EnsureDemoUser(ctx, backend.Users, cfg.Store, logger); err != nil {
		return fmt.Errorf("seed.EnsureDemoUser: %w", err)
	}

	logger.Info("catalog seeded", zap.Int("products", n), zap.Bool("replace", replace), zap.String("file", file))
	return nil
}
