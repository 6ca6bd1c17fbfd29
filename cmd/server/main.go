package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logging"
	"github.com/nikolayk812/storefront/internal/seed"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/nikolayk812/storefront/internal/storeapi"
	"github.com/nikolayk812/storefront/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
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
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	unit, err := domain.ParseCurrency(cfg.Store.Currency)
	if err != nil {
		return fmt.Errorf("domain.ParseCurrency: %w", err)
	}

	backend, err := app.OpenBackend(ctx, cfg.Database, unit, logger)
	if err != nil {
		return fmt.Errorf("app.OpenBackend: %w", err)
	}
	defer backend.Close()

	if _, err := seed.EnsureDemoUser(ctx, backend.Users, cfg.Store, logger); err != nil {
		return fmt.Errorf("seed.EnsureDemoUser: %w", err)
	}

	srv := webserver.New(logger, cfg.HTTP, identity(cfg, logger), backend.Health)

	storeapi.NewHandler(storeapi.Services{
		Catalog:   service.NewCatalog(backend.Products, logger),
		Cart:      service.NewCart(backend.Users, backend.Products, logger),
		Wishlist:  service.NewWishlist(backend.Users, backend.Products, logger),
		Addresses: service.NewAddress(backend.Users, logger),
		Profile:   service.NewProfile(backend.Users, logger),
		Orders:    service.NewOrders(backend.Orders),
		Checkout:  service.NewCheckout(backend.Transactor, unit, logger),
	}, logger).Register(srv.API())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(srv.Start)

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func identity(cfg config.Config, logger *zap.Logger) echo.MiddlewareFunc {
	if cfg.Auth.Mode == config.AuthModeJWT {
		logger.Info("authenticating requests with bearer tokens")
		return webserver.JWTIdentity([]byte(cfg.Auth.JWTSecret))
	}

	logger.Warn("demo auth mode, every request acts as the demo user", zap.Stringer("userID", cfg.Store.DemoUserID))
	return webserver.DemoIdentity(cfg.Store.DemoUserID)
}
