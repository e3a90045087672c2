package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/battle"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex"
)

// HandlerConfig holds dependencies for the battle handler
type HandlerConfig struct {
	PokedexService pokedex.Service
	BattleService  battle.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.PokedexService == nil {
		vb.RequiredField("PokedexService")
	}
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	return vb.Build()
}

// Handler implements BattleServiceServer
type Handler struct {
	pokedexService pokedex.Service
	battleService  battle.Service
}

// NewHandler creates a new battle handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		pokedexService: cfg.PokedexService,
		battleService:  cfg.BattleService,
	}, nil
}

// GetPokemon returns the resolved profile for the requested name
func (h *Handler) GetPokemon(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.pokedexService.GetPokemon(ctx, &pokedex.GetPokemonInput{Name: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(out.Pokemon)
}

// SimulateBattle runs a battle between request fields pokemon1 and pokemon2
func (h *Handler) SimulateBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := simulateInputFromStruct(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.SimulateBattle(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(out.Record.Result(out.Stored))
}

// GetBattle returns a stored battle record
func (h *Handler) GetBattle(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{BattleID: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(out.Record)
}

// ListBattles returns the most recent battle records under "battles"
func (h *Handler) ListBattles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	limit, err := intField(req, "limit")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.ListBattles(ctx, &battle.ListBattlesInput{Limit: limit})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&battleList{Battles: out.Records})
}

func respond(v any) (*structpb.Struct, error) {
	st, err := toStruct(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
		return nil, errors.ToGRPCError(err)
	}
	return st, nil
}

var _ BattleServiceServer = (*Handler)(nil)
