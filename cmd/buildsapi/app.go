package main

import (
	"fmt"

	"github.com/gwforge/builds-api/internal/catalog"
	"github.com/gwforge/builds-api/internal/config"
	buildorch "github.com/gwforge/builds-api/internal/orchestrators/build"
	"github.com/gwforge/builds-api/internal/redis"
	buildrepo "github.com/gwforge/builds-api/internal/repositories/build"
	buildsvc "github.com/gwforge/builds-api/internal/services/build"
	"github.com/gwforge/builds-api/internal/template"
	"github.com/gwforge/builds-api/internal/validation"
)

// coreDeps bundles the catalog-backed components every command needs.
// They are cheap to build and hold no connections.
type coreDeps struct {
	catalog   *catalog.Catalog
	codec     *template.Codec
	validator *validation.Validator
}

func newCoreDeps() (*coreDeps, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	codec, err := template.New(&template.Config{Catalog: cat})
	if err != nil {
		return nil, fmt.Errorf("failed to create codec: %w", err)
	}

	validator, err := validation.New(&validation.Config{Catalog: cat})
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}

	return &coreDeps{catalog: cat, codec: codec, validator: validator}, nil
}

// newService wires the full redis-backed service for the builds commands.
// The returned cleanup closes the redis connection.
func newService() (buildsvc.Service, config.Config, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cfg, nil, err
	}

	deps, err := newCoreDeps()
	if err != nil {
		return nil, cfg, nil, err
	}

	client, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxIdleTime: cfg.Redis.ConnMaxIdleTime,
		MaxRetries:      cfg.Redis.MaxRetries,
	})
	if err != nil {
		return nil, cfg, nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	repo, err := buildrepo.NewRedis(&buildrepo.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, cfg, nil, fmt.Errorf("failed to create build repository: %w", err)
	}

	svc, err := buildorch.New(&buildorch.Config{
		BuildRepo: repo,
		Catalog:   deps.catalog,
		Codec:     deps.codec,
		Validator: deps.validator,
	})
	if err != nil {
		cleanup()
		return nil, cfg, nil, fmt.Errorf("failed to create build orchestrator: %w", err)
	}

	return svc, cfg, cleanup, nil
}

// resolvePlayerID applies the configured default when the flag was omitted.
func resolvePlayerID(flagValue string, cfg config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Player.DefaultID != "" {
		return cfg.Player.DefaultID, nil
	}
	return "", fmt.Errorf("--player-id is required (or set player.default_id in the config file)")
}
