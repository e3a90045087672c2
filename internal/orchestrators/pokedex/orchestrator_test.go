package pokedex_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/clients/external"
	externalmock "github.com/harsheetasys/pokemon-battle-simulation/internal/clients/external/mock"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *externalmock.MockClient
	orchestrator pokedex.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = externalmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	o, err := pokedex.NewOrchestrator(&pokedex.Config{Client: s.mockClient})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func sprite(url string) *string { return &url }

func bulbasaurData(moveNames ...string) *external.PokemonData {
	data := &external.PokemonData{
		ID:      1,
		Name:    "bulbasaur",
		Sprites: external.SpriteData{FrontDefault: sprite("https://img/1.png")},
		Types: []external.TypeSlot{
			{Slot: 1, Type: external.NamedResource{Name: "grass"}},
			{Slot: 2, Type: external.NamedResource{Name: "poison"}},
		},
		Stats: []external.StatSlot{
			{BaseStat: 45, Stat: external.NamedResource{Name: "hp"}},
			{BaseStat: 49, Stat: external.NamedResource{Name: "attack"}},
			{BaseStat: 45, Stat: external.NamedResource{Name: "speed"}},
		},
		Abilities: []external.AbilitySlot{
			{Ability: external.NamedResource{Name: "overgrow"}},
			{Ability: external.NamedResource{Name: "chlorophyll"}, IsHidden: true},
		},
		Species: external.NamedResource{
			Name: "bulbasaur",
			URL:  "https://pokeapi.co/api/v2/pokemon-species/1/",
		},
	}
	for _, name := range moveNames {
		data.Moves = append(data.Moves, external.MoveSlot{Move: external.NamedResource{Name: name}})
	}
	return data
}

func english(text string) []external.EffectEntry {
	return []external.EffectEntry{
		{Effect: "Sonstiges", Language: external.NamedResource{Name: "de"}},
		{Effect: text, Language: external.NamedResource{Name: "en"}},
	}
}

func (s *OrchestratorTestSuite) expectChain() {
	s.mockClient.EXPECT().
		GetSpecies(gomock.Any(), "bulbasaur").
		Return(&external.SpeciesData{
			ID:             1,
			Name:           "bulbasaur",
			EvolutionChain: &external.ResourceLinkURL{URL: "https://pokeapi.co/api/v2/evolution-chain/1/"},
		}, nil)
	s.mockClient.EXPECT().
		GetEvolutionChain(gomock.Any(), 1).
		Return(&external.EvolutionChainData{
			ID: 1,
			Chain: &external.ChainLink{
				Species: external.NamedResource{Name: "bulbasaur"},
				EvolvesTo: []*external.ChainLink{{
					Species: external.NamedResource{Name: "ivysaur"},
					EvolvesTo: []*external.ChainLink{{
						Species: external.NamedResource{Name: "venusaur"},
					}},
				}},
			},
		}, nil)
}

func (s *OrchestratorTestSuite) expectAbilities() {
	s.mockClient.EXPECT().
		GetAbility(gomock.Any(), "overgrow").
		Return(&external.AbilityData{Name: "overgrow", EffectEntries: english("Boosts grass moves.")}, nil)
	s.mockClient.EXPECT().
		GetAbility(gomock.Any(), "chlorophyll").
		Return(&external.AbilityData{Name: "chlorophyll"}, nil)
}

func (s *OrchestratorTestSuite) TestGetPokemon_FullProfile() {
	s.mockClient.EXPECT().
		GetPokemon(gomock.Any(), "Bulbasaur").
		Return(bulbasaurData("razor-wind", "swords-dance", "cut", "bind", "vine-whip"), nil)
	s.expectChain()
	s.expectAbilities()

	s.mockClient.EXPECT().
		GetMove(gomock.Any(), "razor-wind").
		Return(&external.MoveData{
			Name:          "razor-wind",
			Type:          external.NamedResource{Name: "normal"},
			Power:         entities.IntPtr(80),
			Accuracy:      entities.IntPtr(100),
			PP:            entities.IntPtr(10),
			EffectEntries: english("Charges then hits."),
		}, nil)
	s.mockClient.EXPECT().
		GetMove(gomock.Any(), "swords-dance").
		Return(&external.MoveData{
			Name: "swords-dance",
			Type: external.NamedResource{Name: "normal"},
			PP:   entities.IntPtr(20),
		}, nil)
	s.mockClient.EXPECT().
		GetMove(gomock.Any(), "cut").
		Return(nil, errors.Unavailable("pokeapi down"))
	s.mockClient.EXPECT().
		GetMove(gomock.Any(), "bind").
		Return(&external.MoveData{Name: "bind", Type: external.NamedResource{Name: "normal"}, Power: entities.IntPtr(15)}, nil)

	out, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{Name: "Bulbasaur"})
	s.Require().NoError(err)
	p := out.Pokemon

	s.Equal("bulbasaur", p.Name)
	s.Equal(1, p.ID)
	s.Equal("https://img/1.png", *p.Sprite)
	s.Equal([]string{"grass", "poison"}, p.Types)
	s.Equal(map[string]int{"hp": 45, "attack": 49, "speed": 45}, p.Stats)

	// Only the first four moves, in listing order
	s.Require().Len(p.Moves, entities.MaxKnownMoves)
	s.Equal("razor-wind", p.Moves[0].Name)
	s.Equal("Charges then hits.", p.Moves[0].Effect)
	s.Equal(80, *p.Moves[0].Power)

	s.Equal("swords-dance", p.Moves[1].Name)
	s.Nil(p.Moves[1].Power)
	s.Equal(pokedex.NoMoveEffectText, p.Moves[1].Effect)

	s.Equal(entities.Move{
		Name:   "cut",
		Type:   entities.TypeNormal,
		Power:  entities.IntPtr(40),
		Effect: pokedex.UnknownText,
	}, p.Moves[2])

	s.Equal("bind", p.Moves[3].Name)

	s.Equal([]entities.Ability{
		{Name: "overgrow", Description: "Boosts grass moves."},
		{Name: "chlorophyll", Description: pokedex.NoAbilityDescriptionText},
	}, p.Abilities)

	s.Require().NotNil(p.EvolutionChain)
	s.Equal("bulbasaur", p.EvolutionChain.Name)
	s.Equal("ivysaur", p.EvolutionChain.EvolvesTo[0].Name)
	s.Equal("venusaur", p.EvolutionChain.EvolvesTo[0].EvolvesTo[0].Name)
	s.Empty(p.EvolutionChain.EvolvesTo[0].EvolvesTo[0].EvolvesTo)
}

func (s *OrchestratorTestSuite) TestGetPokemon_EnrichmentFailuresDegrade() {
	s.mockClient.EXPECT().
		GetPokemon(gomock.Any(), "bulbasaur").
		Return(bulbasaurData(), nil)
	s.mockClient.EXPECT().
		GetSpecies(gomock.Any(), "bulbasaur").
		Return(nil, errors.Unavailable("pokeapi down"))
	s.mockClient.EXPECT().
		GetAbility(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("ability not found")).
		Times(2)

	out, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{Name: "bulbasaur"})
	s.Require().NoError(err)

	s.Nil(out.Pokemon.EvolutionChain)
	s.Empty(out.Pokemon.Moves)
	s.Equal([]entities.Ability{
		{Name: "overgrow", Description: pokedex.UnknownText},
		{Name: "chlorophyll", Description: pokedex.UnknownText},
	}, out.Pokemon.Abilities)
}

func (s *OrchestratorTestSuite) TestGetPokemon_BadChainURL() {
	data := bulbasaurData()
	data.Abilities = nil

	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "bulbasaur").Return(data, nil)
	s.mockClient.EXPECT().
		GetSpecies(gomock.Any(), "bulbasaur").
		Return(&external.SpeciesData{EvolutionChain: &external.ResourceLinkURL{URL: "https://pokeapi.co/api/v2/evolution-chain/"}}, nil)

	out, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{Name: "bulbasaur"})
	s.Require().NoError(err)
	s.Nil(out.Pokemon.EvolutionChain)
}

func (s *OrchestratorTestSuite) TestGetPokemon_Errors() {
	s.Run("empty name", func() {
		_, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{Name: " "})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil input", func() {
		_, err := s.orchestrator.GetPokemon(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown pokemon", func() {
		s.mockClient.EXPECT().
			GetPokemon(gomock.Any(), "missingno").
			Return(nil, errors.NotFound("pokemon/missingno not found"))

		_, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{Name: "missingno"})
		s.True(errors.IsNotFound(err))
		s.Equal("Pokémon 'missingno' not found.", errors.GetMessage(err))
	})

	s.Run("provider unavailable", func() {
		s.mockClient.EXPECT().
			GetPokemon(gomock.Any(), "pikachu").
			Return(nil, errors.Unavailable("pokeapi returned 502"))

		_, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{Name: "pikachu"})
		s.True(errors.IsUnavailable(err))
	})
}

func (s *OrchestratorTestSuite) TestGetPokemon_BoundedFanOut() {
	o, err := pokedex.NewOrchestrator(&pokedex.Config{Client: s.mockClient, MaxConcurrency: 1})
	s.Require().NoError(err)

	data := bulbasaurData("a", "b", "c", "d")
	data.Abilities = nil
	data.Species = external.NamedResource{}

	var inFlight, peak int32
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "bulbasaur").Return(data, nil)
	s.mockClient.EXPECT().
		GetMove(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*external.MoveData, error) {
			n := atomic.AddInt32(&inFlight, 1)
			defer atomic.AddInt32(&inFlight, -1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			return &external.MoveData{Name: name, Type: external.NamedResource{Name: "normal"}, Power: entities.IntPtr(10)}, nil
		}).
		Times(4)

	out, err := o.GetPokemon(s.ctx, &pokedex.GetPokemonInput{Name: "bulbasaur"})
	s.Require().NoError(err)

	s.Equal(int32(1), atomic.LoadInt32(&peak))
	names := make([]string, 0, len(out.Pokemon.Moves))
	for _, m := range out.Pokemon.Moves {
		names = append(names, m.Name)
	}
	s.Equal([]string{"a", "b", "c", "d"}, names)
}

func (s *OrchestratorTestSuite) TestGetPokemon_CanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)

	data := bulbasaurData()
	data.Abilities = nil
	data.Species = external.NamedResource{}

	s.mockClient.EXPECT().
		GetPokemon(gomock.Any(), "bulbasaur").
		DoAndReturn(func(context.Context, string) (*external.PokemonData, error) {
			cancel()
			return data, nil
		})

	_, err := s.orchestrator.GetPokemon(ctx, &pokedex.GetPokemonInput{Name: "bulbasaur"})
	s.True(errors.IsCanceled(err))
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := pokedex.NewOrchestrator(&pokedex.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = pokedex.NewOrchestrator(&pokedex.Config{Client: s.mockClient, MaxConcurrency: -1})
	s.True(errors.IsInvalidArgument(err))
}
