package engine_test

import (
	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
)

// maxRoller always rolls the highest face: last usable move, variance 1.0
type maxRoller struct{}

func (r *maxRoller) Roll(size int) (int, error) { return size, nil }
func (r *maxRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = size
	}
	return out, nil
}

// minRoller always rolls 1: first usable move, variance 0.85
type minRoller struct{}

func (r *minRoller) Roll(_ int) (int, error) { return 1, nil }
func (r *minRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

// recordingRoller returns 1 and remembers every requested die size
type recordingRoller struct {
	sizes []int
}

func (r *recordingRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	return 1, nil
}

func (r *recordingRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

// errRoller fails every roll
type errRoller struct{}

func (r *errRoller) Roll(_ int) (int, error)       { return 0, errors.Internal("dice jammed") }
func (r *errRoller) RollN(_, _ int) ([]int, error) { return nil, errors.Internal("dice jammed") }

// fixedRoller returns the same face regardless of size
type fixedRoller struct {
	face int
}

func (r *fixedRoller) Roll(_ int) (int, error)       { return r.face, nil }
func (r *fixedRoller) RollN(_, _ int) ([]int, error) { return []int{r.face}, nil }

func move(name, typ string, power int) entities.Move {
	return entities.Move{Name: name, Type: typ, Power: entities.IntPtr(power)}
}

func pikachu() *entities.Pokemon {
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
		Moves: []entities.Move{
			move("thunder-shock", entities.TypeElectric, 40),
		},
	}
}

func rattata() *entities.Pokemon {
	return &entities.Pokemon{
		Name:  "rattata",
		ID:    19,
		Types: []string{entities.TypeNormal},
		Stats: map[string]int{
			entities.StatHP:             30,
			entities.StatAttack:         56,
			entities.StatDefense:        35,
			entities.StatSpecialAttack:  25,
			entities.StatSpecialDefense: 35,
			entities.StatSpeed:          72,
		},
		Moves: []entities.Move{
			move("tackle", entities.TypeNormal, 40),
		},
	}
}
