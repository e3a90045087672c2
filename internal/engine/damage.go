package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
)

const (
	// BattleLevel is the fixed level every combatant fights at
	BattleLevel = 50

	// DefaultMovePower is used when a move has no power value
	DefaultMovePower = 40

	// SameTypeBonus applies when the move type matches one of the attacker's types
	SameTypeBonus = 1.5

	// MinDamage is the floor for every hit, including immune matchups
	MinDamage = 1

	// The variance die maps 1..1501 onto 0.8500..1.0000
	varianceDieSize = 1501
	varianceOffset  = 8499
	varianceScale   = 10000.0
)

// MinVariance and MaxVariance bound the random damage factor
const (
	MinVariance = 0.85
	MaxVariance = 1.0
)

// specialTypes use special-attack / special-defense instead of attack / defense
var specialTypes = map[string]struct{}{
	entities.TypeFire:     {},
	entities.TypeWater:    {},
	entities.TypeGrass:    {},
	entities.TypeIce:      {},
	entities.TypeElectric: {},
	entities.TypePsychic:  {},
	entities.TypeDragon:   {},
}

// IsSpecialType reports whether moves of this type hit the special stat pair
func IsSpecialType(moveType string) bool {
	_, ok := specialTypes[moveType]
	return ok
}

// RollVariance draws the random damage factor in [MinVariance, MaxVariance]
func RollVariance(roller dice.Roller) (float64, error) {
	roll, err := roller.Roll(varianceDieSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll damage variance")
	}
	if roll < 1 || roll > varianceDieSize {
		return 0, errors.Internalf("variance roll %d outside 1..%d", roll, varianceDieSize)
	}
	return float64(varianceOffset+roll) / varianceScale, nil
}

// CalculateDamage computes the damage one use of move deals, drawing a fresh random factor
func CalculateDamage(attacker, defender *entities.Pokemon, move *entities.Move, roller dice.Roller) (int, error) {
	variance, err := RollVariance(roller)
	if err != nil {
		return 0, err
	}
	return DamageWithVariance(attacker, defender, move, variance), nil
}

// DamageWithVariance is the deterministic part of the damage formula.
// The result is never below MinDamage, even when the type multiplier is zero.
func DamageWithVariance(attacker, defender *entities.Pokemon, move *entities.Move, variance float64) int {
	power := DefaultMovePower
	if move.HasPower() {
		power = *move.Power
	}

	moveType := move.Type
	if moveType == "" {
		moveType = entities.TypeNormal
	}

	attack := attacker.Stat(entities.StatAttack)
	defense := defender.Stat(entities.StatDefense)
	if IsSpecialType(moveType) {
		attack = attacker.Stat(entities.StatSpecialAttack)
		defense = defender.Stat(entities.StatSpecialDefense)
	}
	if defense == 0 {
		defense = 1
	}

	multiplier := TypeMultiplier(moveType, defender.Types)

	stab := 1.0
	if attacker.HasType(moveType) {
		stab = SameTypeBonus
	}

	levelFactor := 2.0*BattleLevel/5.0 + 2.0
	base := ((levelFactor * float64(power) * float64(attack) / float64(defense)) / 50.0) + 2.0

	damage := int(math.Floor(base * multiplier * stab * variance))
	return max(MinDamage, damage)
}
