// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex"
	pokedexmock "github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex/mock"
)

// ExpectPokemonLookup expects a single resolution of name returning profile
func ExpectPokemonLookup(ctx context.Context, mockPokedex *pokedexmock.MockService, name string, profile *entities.Pokemon) *gomock.Call {
	return mockPokedex.EXPECT().
		GetPokemon(ctx, &pokedex.GetPokemonInput{Name: name}).
		Return(&pokedex.GetPokemonOutput{Pokemon: profile}, nil)
}

// ExpectPokemonNotFound expects a resolution of name that fails the way the resolver reports unknown pokemon
func ExpectPokemonNotFound(ctx context.Context, mockPokedex *pokedexmock.MockService, name string) *gomock.Call {
	return mockPokedex.EXPECT().
		GetPokemon(ctx, &pokedex.GetPokemonInput{Name: name}).
		Return(nil, errors.NotFoundf("Pokémon '%s' not found.", name))
}
