package container

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"freshmart/storefront/internal/api"
	"freshmart/storefront/internal/cart"
	"freshmart/storefront/internal/catalog"
	"freshmart/storefront/internal/config"
	"freshmart/storefront/internal/feed"
	"freshmart/storefront/internal/notify"
	"freshmart/storefront/internal/search"
	"freshmart/storefront/internal/session"
	"freshmart/storefront/internal/store"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Loader   feed.Loader
	Catalog  *catalog.Index
	Ledger   *cart.Ledger
	Search   *search.Engine
	Sessions *session.Manager
	Server   *api.Server

	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	log.SetLevel(level)

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	// Test connection
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info("Connected to Redis successfully")
	container.redis = rdb

	kvStore := store.NewRedisStore(rdb, cfg.Redis.KeyPrefix)

	loader := feed.NewLoader(cfg.Feed)
	container.Loader = loader

	index := catalog.NewIndex(loader)
	container.Catalog = index

	sessions := session.NewManager()
	container.Sessions = sessions

	notifier := notify.NewLogNotifier()

	ledger := cart.NewLedger(kvStore, sessions, notifier, cfg.Cart.Shipping, cfg.Cart.Discount)
	ledger.Load(context.Background())
	container.Ledger = ledger

	searchEngine := search.NewEngine(index, kvStore, cfg.Search)
	searchEngine.LoadHistory(context.Background())
	container.Search = searchEngine

	container.Server = api.NewServer(cfg.Server, index, ledger, searchEngine, sessions)

	return container, nil
}

// Run loads the catalog and serves HTTP until the context is cancelled.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	// Warm the catalog index up front; the load falls back to the seed
	// catalog on its own, so this only fails on context cancellation.
	g.Go(func() error {
		return c.Catalog.EnsureLoaded(ctx)
	})

	g.Go(func() error {
		return c.Server.Run(ctx)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if err := c.redis.Close(); err != nil {
		return fmt.Errorf("failed to close Redis client: %w", err)
	}

	log.Info("Container shut down successfully")
	return nil
}
