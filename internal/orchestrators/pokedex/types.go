package pokedex

import (
	"context"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex Service

// Service resolves pokemon identifiers into battle-ready profiles
type Service interface {
	GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error)
}

// GetPokemonInput defines the request for resolving a pokemon
type GetPokemonInput struct {
	// Name is a pokemon name or numeric id; case and surrounding spaces are ignored
	Name string
}

// GetPokemonOutput defines the response for resolving a pokemon
type GetPokemonOutput struct {
	Pokemon *entities.Pokemon
}
