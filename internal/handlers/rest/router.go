// Package rest serves the JSON HTTP API and the battle replay websocket
package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/battle"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex"
)

// Routes
const (
	RouteRoot         = "/"
	RoutePokemon      = "/pokemon/:name"
	RouteSimulate     = "/battle/simulate"
	RouteBattles      = "/battles"
	RouteBattle       = "/battles/:id"
	RouteBattleStream = "/battles/:id/stream"
)

// WelcomeMessage is returned by the root route
const WelcomeMessage = "Pokémon Data Resource is running. Use /pokemon/{name} & /battle/simulate."

// Config holds dependencies for the HTTP router
type Config struct {
	PokedexService pokedex.Service
	BattleService  battle.Service

	// ReplayInterval paces websocket replays; zero sends every entry at once
	ReplayInterval time.Duration
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
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
	if c.ReplayInterval < 0 {
		vb.Field("ReplayInterval", "must not be negative")
	}
	return vb.Build()
}

// Handler serves the HTTP routes
type Handler struct {
	pokedexService pokedex.Service
	battleService  battle.Service
	replayInterval time.Duration
	upgrader       websocket.Upgrader
}

// NewRouter builds the gin engine with middleware and every route registered
func NewRouter(cfg *Config) (*gin.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &Handler{
		pokedexService: cfg.PokedexService,
		battleService:  cfg.BattleService,
		replayInterval: cfg.ReplayInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// any origin may connect, matching the CORS policy
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), cors())

	router.GET(RouteRoot, h.Root)
	router.GET(RoutePokemon, h.GetPokemon)
	router.GET(RouteSimulate, h.SimulateBattle)
	router.GET(RouteBattles, h.ListBattles)
	router.GET(RouteBattle, h.GetBattle)
	router.GET(RouteBattleStream, h.StreamBattle)

	return router, nil
}
