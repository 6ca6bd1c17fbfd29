package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/migrations"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/repository/memory"
	"github.com/nikolayk812/storefront/internal/seed"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// Backend is the storage selected by DATABASE_DRIVER.
type Backend struct {
	Products   port.ProductRepository
	Users      port.UserRepository
	Orders     port.OrderRepository
	Transactor port.Transactor
	Health     port.HealthChecker

	close func()
}

func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// OpenBackend connects to the configured store. The memory driver starts
// with the bundled catalog so a fresh process has something to sell.
func OpenBackend(ctx context.Context, cfg config.DatabaseConfig, unit currency.Unit, logger *zap.Logger) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return openMemory(ctx, unit, logger)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Backend, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	if cfg.Migrate {
		if err := migrations.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations.Apply: %w", err)
		}
		logger.Info("database migrations applied")
	}

	logger.Info("connected to postgres", zap.Int32("maxConns", poolConfig.MaxConns))

	return &Backend{
		Products:   repository.NewProduct(pool),
		Users:      repository.NewUser(pool),
		Orders:     repository.NewOrder(pool),
		Transactor: repository.NewTransactor(pool),
		Health:     repository.NewHealthChecker(pool),
		close:      pool.Close,
	}, nil
}

func openMemory(ctx context.Context, unit currency.Unit, logger *zap.Logger) (*Backend, error) {
	store := memory.NewStore()

	catalog, err := seed.DefaultProducts(unit)
	if err != nil {
		return nil, fmt.Errorf("seed.DefaultProducts: %w", err)
	}

	n, err := seed.Products(ctx, store.Products(), catalog, true)
	if err != nil {
		return nil, fmt.Errorf("seed.Products: %w", err)
	}

	logger.Warn("using in-memory store, data is lost on exit", zap.Int("products", n))

	return &Backend{
		Products:   store.Products(),
		Users:      store.Users(),
		Orders:     store.Orders(),
		Transactor: store.Transactor(),
		Health:     store,
	}, nil
}
