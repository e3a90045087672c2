package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/clients/external"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/config"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/engine"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/battle"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/pkg/clock"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/pkg/idgen"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/redis"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/repositories/battles"
)

// redisPingTimeout bounds the startup connectivity check
const redisPingTimeout = 5 * time.Second

// app holds the services shared by both transports
type app struct {
	pokedex pokedex.Service
	battles battle.Service
	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}
	clk := clock.New()

	pokeClient, err := external.New(&external.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	a.pokedex, err = pokedex.NewOrchestrator(&pokedex.Config{
		Client:         pokeClient,
		MaxConcurrency: cfg.PokeAPI.MaxConcurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokedex service: %w", err)
	}

	battleEngine, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle engine: %w", err)
	}

	repo, err := a.newBattleRepository(ctx, cfg, clk)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.battles, err = battle.NewOrchestrator(&battle.Config{
		Pokedex:     a.pokedex,
		Engine:      battleEngine,
		BattleRepo:  repo,
		IDGenerator: idgen.NewUUID("battle"),
		Clock:       clk,
		RecordTTL:   cfg.Battles.TTL,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create battle service: %w", err)
	}

	return a, nil
}

func (a *app) newBattleRepository(ctx context.Context, cfg *config.Config, clk clock.Clock) (battles.Repository, error) {
	if !cfg.Redis.UsesRedis() {
		slog.Info("battle history kept in memory")
		return battles.NewInMemory(clk)
	}

	client, err := redis.New(cfg.Redis.Topology(), cfg.Redis.Options())
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	a.closers = append(a.closers, client.Close)

	if err := redis.Ping(ctx, client, redisPingTimeout); err != nil {
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	slog.Info("battle history kept in redis", "addrs", cfg.Redis.Addrs, "master_name", cfg.Redis.MasterName)

	return battles.NewRedisRepository(&battles.Config{
		Client:     client,
		Clock:      clk,
		IndexLimit: cfg.Battles.IndexLimit,
	})
}

// Close releases external connections
func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
	a.closers = nil
}
