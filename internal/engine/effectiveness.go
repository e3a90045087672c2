package engine

import "github.com/harsheetasys/pokemon-battle-simulation/internal/entities"

// typeChart maps attacking type -> defending type -> multiplier.
// Pairs that are not listed are neutral. Never written after init.
var typeChart = map[string]map[string]float64{
	entities.TypeNormal: {
		entities.TypeRock:  0.5,
		entities.TypeGhost: 0,
		entities.TypeSteel: 0.5,
	},
	entities.TypeFire: {
		entities.TypeFire:   0.5,
		entities.TypeWater:  0.5,
		entities.TypeGrass:  2,
		entities.TypeIce:    2,
		entities.TypeBug:    2,
		entities.TypeRock:   0.5,
		entities.TypeDragon: 0.5,
		entities.TypeSteel:  2,
	},
	entities.TypeWater: {
		entities.TypeFire:   2,
		entities.TypeWater:  0.5,
		entities.TypeGrass:  0.5,
		entities.TypeGround: 2,
		entities.TypeRock:   2,
		entities.TypeDragon: 0.5,
	},
	entities.TypeGrass: {
		entities.TypeFire:   0.5,
		entities.TypeWater:  2,
		entities.TypeGrass:  0.5,
		entities.TypePoison: 0.5,
		entities.TypeGround: 2,
		entities.TypeFlying: 0.5,
		entities.TypeBug:    0.5,
		entities.TypeRock:   2,
		entities.TypeDragon: 0.5,
		entities.TypeSteel:  0.5,
	},
	entities.TypeElectric: {
		entities.TypeWater:    2,
		entities.TypeElectric: 0.5,
		entities.TypeGrass:    0.5,
		entities.TypeGround:   0,
		entities.TypeFlying:   2,
		entities.TypeDragon:   0.5,
	},
	entities.TypePsychic: {
		entities.TypePsychic: 0.5,
		entities.TypeDark:    0,
		entities.TypeSteel:   0.5,
	},
	entities.TypeIce: {
		entities.TypeFire:  0.5,
		entities.TypeWater: 0.5,
		entities.TypeIce:   0.5,
		entities.TypeSteel: 0.5,
	},
	entities.TypeDragon: {
		entities.TypeDragon: 2,
		entities.TypeSteel:  0.5,
		entities.TypeFairy:  0,
	},
}

// Effectiveness returns the multiplier for a single attacking/defending type pair
func Effectiveness(attacking, defending string) float64 {
	if m, ok := typeChart[attacking][defending]; ok {
		return m
	}
	return 1.0
}

// TypeMultiplier combines the effectiveness of moveType against every defender type.
// Dual types compound multiplicatively.
func TypeMultiplier(moveType string, defenderTypes []string) float64 {
	multiplier := 1.0
	if moveType == "" {
		return multiplier
	}
	for _, t := range defenderTypes {
		multiplier *= Effectiveness(moveType, t)
	}
	return multiplier
}
