package testutils

import (
	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
)

// TestBattleID is the default battle id used by fixtures
const TestBattleID = "battle-test-001"

// CreateTestPikachu returns a fast electric profile with one damaging move
func CreateTestPikachu() *entities.Pokemon {
	return &entities.Pokemon{
		Name:  "pikachu",
		ID:    25,
		Types: []string{entities.TypeElectric},
		Stats: map[string]int{
			entities.StatHP:             35,
			entities.StatAttack:         55,
			entities.StatDefense:        40,
			entities.StatSpecialAttack:  50,
			entities.StatSpecialDefense: 50,
			entities.StatSpeed:          90,
		},
		Abilities: []entities.Ability{{Name: "static", Description: "May paralyze on contact."}},
		Moves: []entities.Move{
			{Name: "thunder-shock", Type: entities.TypeElectric, Power: entities.IntPtr(40), Effect: "May paralyze."},
			{Name: "growl", Type: entities.TypeNormal, Effect: "Lowers attack."},
		},
		EvolutionChain: &entities.EvolutionNode{
			Name: "pichu",
			EvolvesTo: []*entities.EvolutionNode{{
				Name:      "pikachu",
				EvolvesTo: []*entities.EvolutionNode{{Name: "raichu", EvolvesTo: []*entities.EvolutionNode{}}},
			}},
		},
	}
}

// CreateTestBulbasaur returns a slow grass/poison profile
func CreateTestBulbasaur() *entities.Pokemon {
	return &entities.Pokemon{
		Name:  "bulbasaur",
		ID:    1,
		Types: []string{entities.TypeGrass, entities.TypePoison},
		Stats: map[string]int{
			entities.StatHP:             45,
			entities.StatAttack:         49,
			entities.StatDefense:        49,
			entities.StatSpecialAttack:  65,
			entities.StatSpecialDefense: 65,
			entities.StatSpeed:          45,
		},
		Abilities: []entities.Ability{{Name: "overgrow", Description: "Boosts grass moves."}},
		Moves: []entities.Move{
			{Name: "vine-whip", Type: entities.TypeGrass, Power: entities.IntPtr(45)},
			{Name: "tackle", Type: entities.TypeNormal, Power: entities.IntPtr(40)},
		},
	}
}

// CreateTestBattleRecord returns a short finished battle between the fixtures above
func CreateTestBattleRecord(id string) *entities.BattleRecord {
	return &entities.BattleRecord{
		ID:       id,
		Pokemon1: "pikachu",
		Pokemon2: "bulbasaur",
		Winner:   "Pikachu",
		Outcome:  entities.OutcomeWinnerA,
		Turns:    1,
		Log: []entities.LogEntry{
			{
				Action:   entities.ActionAttack,
				Attacker: &entities.Participant{Name: "pikachu"},
				Defender: &entities.Participant{Name: "bulbasaur", HPLeft: entities.IntPtr(0)},
				Move:     "thunder-shock",
				Damage:   45,
				Text:     "Pikachu used Thunder-shock dealing 45 damage!",
			},
			{
				Action:  entities.ActionFaint,
				Pokemon: &entities.Participant{Name: "bulbasaur"},
				Text:    "Bulbasaur fainted!",
			},
			{
				Action: entities.ActionEnd,
				Text:   "Battle Over. Winner: Pikachu",
			},
		},
	}
}
