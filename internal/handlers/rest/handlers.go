package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/battle"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex"
)

// Root reports that the service is up
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
}

// GetPokemon returns the resolved profile for :name
func (h *Handler) GetPokemon(c *gin.Context) {
	out, err := h.pokedexService.GetPokemon(c.Request.Context(), &pokedex.GetPokemonInput{
		Name: c.Param("name"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Pokemon)
}

// SimulateBattle runs a battle between ?pokemon1 and ?pokemon2, optionally with ?seed
func (h *Handler) SimulateBattle(c *gin.Context) {
	input := &battle.SimulateBattleInput{
		Pokemon1: c.Query("pokemon1"),
		Pokemon2: c.Query("pokemon2"),
	}

	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(c, errors.InvalidArgumentf("seed must be a non-negative integer: %q", raw))
			return
		}
		input.Seed = seed
	}

	out, err := h.battleService.SimulateBattle(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Record.Result(out.Stored))
}

// ListBattles returns the most recent battles, newest first
func (h *Handler) ListBattles(c *gin.Context) {
	input := &battle.ListBattlesInput{}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, errors.InvalidArgumentf("limit must be an integer: %q", raw))
			return
		}
		input.Limit = limit
	}

	out, err := h.battleService.ListBattles(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	records := out.Records
	if records == nil {
		records = []*entities.BattleRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"battles": records})
}

// GetBattle returns the stored record for :id
func (h *Handler) GetBattle(c *gin.Context) {
	out, err := h.battleService.GetBattle(c.Request.Context(), &battle.GetBattleInput{
		BattleID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Record)
}

// writeError renders err as {"detail": message} with the status its code maps to
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Request.URL.Path, "code", code, "error", err)
	}

	c.AbortWithStatusJSON(status, gin.H{"detail": errors.GetRootMessage(err)})
}
