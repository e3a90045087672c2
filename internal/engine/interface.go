// Package engine runs turn-based battles between two resolved pokemon
package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
)

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/harsheetasys/pokemon-battle-simulation/internal/engine Engine

// Engine simulates battles. Each call owns its own battle state, so a single Engine
// may serve concurrent simulations.
type Engine interface {
	Simulate(input *SimulateInput) (*SimulateOutput, error)
}

// SimulateInput contains the two combatants. PokemonA is the first requested combatant and
// wins speed ties.
type SimulateInput struct {
	PokemonA *entities.Pokemon
	PokemonB *entities.Pokemon

	// Roller overrides the engine's default random source for this battle only
	Roller dice.Roller
}

// SimulateOutput is the observable result of a battle
type SimulateOutput struct {
	Log     []entities.LogEntry
	Outcome entities.Outcome
	// Winner is the capitalised winner name, empty on a draw
	Winner string
	Turns  int
}
