package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
)

// FallbackMoveName is used by a pokemon that knows no move with power
const FallbackMoveName = "tackle"

// FallbackMove returns a fresh copy of the move used when nothing else is usable
func FallbackMove() *entities.Move {
	return &entities.Move{
		Name:  FallbackMoveName,
		Type:  entities.TypeNormal,
		Power: entities.IntPtr(DefaultMovePower),
	}
}

// ChooseMove picks uniformly among the pokemon's moves that have power.
// With no such move it returns FallbackMove without consuming randomness.
func ChooseMove(p *entities.Pokemon, roller dice.Roller) (*entities.Move, error) {
	usable := make([]entities.Move, 0, len(p.Moves))
	for _, m := range p.Moves {
		if m.HasPower() {
			usable = append(usable, m)
		}
	}

	if len(usable) == 0 {
		return FallbackMove(), nil
	}

	roll, err := roller.Roll(len(usable))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to choose move for %s", p.Name)
	}
	if roll < 1 || roll > len(usable) {
		return nil, errors.Internalf("move roll %d outside 1..%d", roll, len(usable))
	}

	chosen := usable[roll-1]
	return &chosen, nil
}
