package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
)

// MaxTurns bounds every battle, including zero-progress stalemates
const MaxTurns = 100

// Config configures the engine
type Config struct {
	// Roller is the default random source (optional, defaults to NewRoller(0))
	Roller dice.Roller
}

// Validate sets defaults
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.Roller == nil {
		cfg.Roller = NewRoller(0)
	}
	return nil
}

type engine struct {
	roller dice.Roller
}

// New creates a battle engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{roller: cfg.Roller}, nil
}

// combatant is the mutable runtime view of a profile
type combatant struct {
	profile   *entities.Pokemon
	currentHP int
}

func (c *combatant) alive() bool {
	return c.currentHP > 0
}

func (c *combatant) takeDamage(amount int) {
	c.currentHP = max(0, c.currentHP-amount)
}

// battle is the state of one simulation; it is never shared
type battle struct {
	a, b          *combatant
	first, second *combatant
	roller        dice.Roller
	turns         int
	log           []entities.LogEntry
}

func (e *engine) Simulate(input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PokemonA == nil || input.PokemonB == nil {
		return nil, errors.InvalidArgument("both pokemon are required")
	}

	roller := input.Roller
	if roller == nil {
		roller = e.roller
	}

	state := newBattle(input.PokemonA, input.PokemonB, roller)
	for state.a.alive() && state.b.alive() && state.turns < MaxTurns {
		if err := state.playRound(); err != nil {
			return nil, err
		}
		state.turns++
	}

	return state.finish(), nil
}

// newBattle seeds hp and fixes the turn order for the whole battle
func newBattle(pokemonA, pokemonB *entities.Pokemon, roller dice.Roller) *battle {
	a := &combatant{profile: pokemonA, currentHP: pokemonA.Stat(entities.StatHP)}
	b := &combatant{profile: pokemonB, currentHP: pokemonB.Stat(entities.StatHP)}

	first, second := a, b
	if pokemonA.Stat(entities.StatSpeed) < pokemonB.Stat(entities.StatSpeed) {
		first, second = b, a
	}

	return &battle{
		a:      a,
		b:      b,
		first:  first,
		second: second,
		roller: roller,
	}
}

// playRound runs up to two actions; it stops early as soon as someone faints
func (b *battle) playRound() error {
	order := [2][2]*combatant{
		{b.first, b.second},
		{b.second, b.first},
	}

	for _, pair := range order {
		attacker, defender := pair[0], pair[1]
		if !attacker.alive() || !defender.alive() {
			return nil
		}

		move, err := ChooseMove(attacker.profile, b.roller)
		if err != nil {
			return err
		}

		damage, err := CalculateDamage(attacker.profile, defender.profile, move, b.roller)
		if err != nil {
			return err
		}

		defender.takeDamage(damage)
		b.log = append(b.log, attackEntry(attacker, defender, move, damage))

		if defender.currentHP == 0 {
			b.log = append(b.log, faintEntry(defender))
			return nil
		}
	}

	return nil
}

func (b *battle) finish() *SimulateOutput {
	out := &SimulateOutput{
		Outcome: entities.OutcomeDraw,
		Turns:   b.turns,
	}

	switch {
	case b.a.currentHP > 0 && b.b.currentHP == 0:
		out.Outcome = entities.OutcomeWinnerA
		out.Winner = Capitalize(b.a.profile.Name)
	case b.b.currentHP > 0 && b.a.currentHP == 0:
		out.Outcome = entities.OutcomeWinnerB
		out.Winner = Capitalize(b.b.profile.Name)
	}

	label := out.Winner
	if label == "" {
		label = entities.DrawLabel
	}
	b.log = append(b.log, entities.LogEntry{
		Action: entities.ActionEnd,
		Text:   fmt.Sprintf("Battle Over. Winner: %s", label),
	})

	out.Log = b.log
	return out
}

func attackEntry(attacker, defender *combatant, move *entities.Move, damage int) entities.LogEntry {
	return entities.LogEntry{
		Action:   entities.ActionAttack,
		Attacker: &entities.Participant{Name: attacker.profile.Name},
		Defender: &entities.Participant{
			Name:   defender.profile.Name,
			HPLeft: entities.IntPtr(defender.currentHP),
		},
		Move:   move.Name,
		Damage: damage,
		Text: fmt.Sprintf("%s used %s dealing %d damage!",
			Capitalize(attacker.profile.Name), Capitalize(move.Name), damage),
	}
}

func faintEntry(c *combatant) entities.LogEntry {
	return entities.LogEntry{
		Action:  entities.ActionFaint,
		Pokemon: &entities.Participant{Name: c.profile.Name},
		Text:    fmt.Sprintf("%s fainted!", Capitalize(c.profile.Name)),
	}
}
