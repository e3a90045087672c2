// Package battle resolves two pokemon, runs the engine and keeps the result
package battle

import (
	"context"
	"log/slog"
	"time"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/engine"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/pkg/clock"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/pkg/idgen"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/repositories/battles"
)

const (
	// DefaultListLimit is used when ListBattlesInput.Limit is zero
	DefaultListLimit = 10

	// MaxListLimit caps ListBattlesInput.Limit
	MaxListLimit = 100
)

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Pokedex     pokedex.Service
	Engine      engine.Engine
	BattleRepo  battles.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// RecordTTL is how long finished battles are kept (optional, defaults to battles.DefaultTTL)
	RecordTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Pokedex == nil {
		vb.RequiredField("Pokedex")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.RecordTTL < 0 {
		vb.Field("RecordTTL", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.RecordTTL == 0 {
		c.RecordTTL = battles.DefaultTTL
	}
	return nil
}

type orchestrator struct {
	pokedex    pokedex.Service
	engine     engine.Engine
	battleRepo battles.Repository
	idGen      idgen.Generator
	clock      clock.Clock
	recordTTL  time.Duration
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		pokedex:    cfg.Pokedex,
		engine:     cfg.Engine,
		battleRepo: cfg.BattleRepo,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
		recordTTL:  cfg.RecordTTL,
	}, nil
}

// SimulateBattle resolves both pokemon before anything random happens, so lookup
// failures never produce a partial battle.
func (o *orchestrator) SimulateBattle(ctx context.Context, input *SimulateBattleInput) (*SimulateBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("pokemon1", input.Pokemon1, vb)
	errors.ValidateRequired("pokemon2", input.Pokemon2, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	first, err := o.pokedex.GetPokemon(ctx, &pokedex.GetPokemonInput{Name: input.Pokemon1})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", input.Pokemon1)
	}
	second, err := o.pokedex.GetPokemon(ctx, &pokedex.GetPokemonInput{Name: input.Pokemon2})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", input.Pokemon2)
	}

	simulateInput := &engine.SimulateInput{
		PokemonA: first.Pokemon,
		PokemonB: second.Pokemon,
	}
	if input.Seed != 0 {
		simulateInput.Roller = engine.NewRoller(input.Seed)
	}

	result, err := o.engine.Simulate(simulateInput)
	if err != nil {
		return nil, errors.Wrap(err, "battle simulation failed")
	}

	now := o.clock.Now()
	record := &entities.BattleRecord{
		ID:        o.idGen.Generate(),
		Pokemon1:  first.Pokemon.Name,
		Pokemon2:  second.Pokemon.Name,
		Winner:    result.Winner,
		Outcome:   result.Outcome,
		Turns:     result.Turns,
		Seed:      input.Seed,
		Log:       result.Log,
		CreatedAt: now,
		ExpiresAt: now.Add(o.recordTTL),
	}

	slog.Info("battle simulated",
		"battle_id", record.ID,
		"pokemon1", record.Pokemon1,
		"pokemon2", record.Pokemon2,
		"winner", record.WinnerLabel(),
		"turns", record.Turns)

	saved, err := o.battleRepo.Save(ctx, &battles.SaveInput{Record: record, TTL: o.recordTTL})
	if err != nil {
		// a finished battle is still returned when history cannot be written
		slog.Error("failed to save battle", "battle_id", record.ID, "error", err)
		return &SimulateBattleOutput{Record: record}, nil
	}

	return &SimulateBattleOutput{Record: saved.Record, Stored: true}, nil
}

// GetBattle retrieves a stored battle
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	out, err := o.battleRepo.Get(ctx, &battles.GetInput{BattleID: input.BattleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get battle %s", input.BattleID)
	}

	return &GetBattleOutput{Record: out.Record}, nil
}

// ListBattles returns the most recent battles first
func (o *orchestrator) ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("limit", limit, 1, MaxListLimit, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.battleRepo.ListRecent(ctx, &battles.ListRecentInput{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}

	return &ListBattlesOutput{Records: out.Records}, nil
}
