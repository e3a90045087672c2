// Package pokedex turns PokeAPI resources into combatant profiles
package pokedex

import (
	"context"
	"log/slog"
	"sync"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/clients/external"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
)

const (
	// DefaultMaxConcurrency bounds concurrent move and ability lookups per pokemon
	DefaultMaxConcurrency = 4

	// UnknownText marks a move effect or ability description whose lookup failed
	UnknownText = "unknown"

	// NoMoveEffectText is used when a move has no English effect entry
	NoMoveEffectText = "No effect description available"

	// NoAbilityDescriptionText is used when an ability has no English effect entry
	NoAbilityDescriptionText = "No description available"

	// fallbackMovePower is the power given to a move whose lookup failed
	fallbackMovePower = 40
)

// Config holds the dependencies for the pokedex orchestrator
type Config struct {
	Client external.Client

	// MaxConcurrency bounds the move/ability fan-out (optional, defaults to DefaultMaxConcurrency)
	MaxConcurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.MaxConcurrency < 0 {
		vb.Field("MaxConcurrency", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	return nil
}

type orchestrator struct {
	client         external.Client
	maxConcurrency int
}

// NewOrchestrator creates a new pokedex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:         cfg.Client,
		maxConcurrency: cfg.MaxConcurrency,
	}, nil
}

// GetPokemon fetches the pokemon and enriches it with moves, abilities and its evolution chain.
// Only the base resource is mandatory; every enrichment degrades to a fallback value.
func (o *orchestrator) GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, 100, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := o.client.GetPokemon(ctx, input.Name)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("Pokémon '%s' not found.", input.Name).
				WithMeta("pokemon", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get pokemon %s", input.Name)
	}

	pokemon := &entities.Pokemon{
		Name:   data.Name,
		ID:     data.ID,
		Sprite: data.Sprites.FrontDefault,
		Types:  make([]string, 0, len(data.Types)),
		Stats:  make(map[string]int, len(data.Stats)),
	}
	for _, t := range data.Types {
		pokemon.Types = append(pokemon.Types, t.Type.Name)
	}
	for _, s := range data.Stats {
		pokemon.Stats[s.Stat.Name] = s.BaseStat
	}

	pokemon.EvolutionChain = o.resolveEvolutionChain(ctx, data)
	pokemon.Moves = o.resolveMoves(ctx, data.Moves)
	pokemon.Abilities = o.resolveAbilities(ctx, data.Abilities)

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, contextCode(err), "pokemon lookup interrupted")
	}

	slog.Debug("resolved pokemon",
		"pokemon", pokemon.Name,
		"moves", len(pokemon.Moves),
		"abilities", len(pokemon.Abilities),
		"has_evolution_chain", pokemon.EvolutionChain != nil)

	return &GetPokemonOutput{Pokemon: pokemon}, nil
}

// resolveEvolutionChain follows species -> evolution chain; any failure yields nil
func (o *orchestrator) resolveEvolutionChain(ctx context.Context, data *external.PokemonData) *entities.EvolutionNode {
	speciesName := data.Species.Name
	if speciesName == "" {
		return nil
	}

	species, err := o.client.GetSpecies(ctx, speciesName)
	if err != nil {
		slog.Debug("species lookup failed", "species", speciesName, "error", err)
		return nil
	}
	if species.EvolutionChain == nil || species.EvolutionChain.URL == "" {
		return nil
	}

	chainID, err := external.ParseResourceID(species.EvolutionChain.URL)
	if err != nil {
		slog.Debug("unusable evolution chain url", "url", species.EvolutionChain.URL, "error", err)
		return nil
	}

	chain, err := o.client.GetEvolutionChain(ctx, chainID)
	if err != nil {
		slog.Debug("evolution chain lookup failed", "chain_id", chainID, "error", err)
		return nil
	}

	return convertChainLink(chain.Chain)
}

func convertChainLink(link *external.ChainLink) *entities.EvolutionNode {
	if link == nil {
		return nil
	}

	node := &entities.EvolutionNode{
		Name:      link.Species.Name,
		EvolvesTo: make([]*entities.EvolutionNode, 0, len(link.EvolvesTo)),
	}
	for _, next := range link.EvolvesTo {
		if child := convertChainLink(next); child != nil {
			node.EvolvesTo = append(node.EvolvesTo, child)
		}
	}
	return node
}

// resolveMoves fetches the first MaxKnownMoves moves, preserving their order
func (o *orchestrator) resolveMoves(ctx context.Context, slots []external.MoveSlot) []entities.Move {
	if len(slots) > entities.MaxKnownMoves {
		slots = slots[:entities.MaxKnownMoves]
	}

	moves := make([]entities.Move, len(slots))
	o.fanOut(len(slots), func(i int) {
		moves[i] = o.resolveMove(ctx, slots[i].Move.Name)
	})
	return moves
}

func (o *orchestrator) resolveMove(ctx context.Context, name string) entities.Move {
	data, err := o.client.GetMove(ctx, name)
	if err != nil {
		slog.Debug("move lookup failed", "move", name, "error", err)
		return entities.Move{
			Name:   name,
			Type:   entities.TypeNormal,
			Power:  entities.IntPtr(fallbackMovePower),
			Effect: UnknownText,
		}
	}

	effect, ok := external.EnglishEffect(data.EffectEntries)
	if !ok {
		effect = NoMoveEffectText
	}

	return entities.Move{
		Name:     data.Name,
		Type:     data.Type.Name,
		Power:    data.Power,
		Accuracy: data.Accuracy,
		PP:       data.PP,
		Effect:   effect,
	}
}

// resolveAbilities fetches every listed ability, preserving their order
func (o *orchestrator) resolveAbilities(ctx context.Context, slots []external.AbilitySlot) []entities.Ability {
	abilities := make([]entities.Ability, len(slots))
	o.fanOut(len(slots), func(i int) {
		abilities[i] = o.resolveAbility(ctx, slots[i].Ability.Name)
	})
	return abilities
}

func (o *orchestrator) resolveAbility(ctx context.Context, name string) entities.Ability {
	data, err := o.client.GetAbility(ctx, name)
	if err != nil {
		slog.Debug("ability lookup failed", "ability", name, "error", err)
		return entities.Ability{Name: name, Description: UnknownText}
	}

	description, ok := external.EnglishEffect(data.EffectEntries)
	if !ok {
		description = NoAbilityDescriptionText
	}
	return entities.Ability{Name: data.Name, Description: description}
}

// fanOut runs fn(0..n-1) with at most maxConcurrency calls in flight.
// Each call writes only its own index, so results need no locking.
func (o *orchestrator) fanOut(n int, fn func(i int)) {
	semaphore := make(chan struct{}, o.maxConcurrency)
	var wg sync.WaitGroup

	for i := range n {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			fn(idx)
		}(i)
	}

	wg.Wait()
}

func contextCode(err error) errors.Code {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.CodeDeadlineExceeded
	}
	return errors.CodeCanceled
}
