package engine

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
)

// pcgStream is xor-ed into the seed to derive the second PCG word
const pcgStream = 0x9e3779b97f4a7c15

// NewRoller returns a dice.Roller. A zero seed uses dice.DefaultRoller;
// any other seed yields a reproducible sequence.
func NewRoller(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return &seededRoller{
		rng: rand.New(rand.NewPCG(seed, seed^pcgStream)),
	}
}

// seededRoller serialises access to its generator so one seed can back concurrent callers
type seededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *seededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

func (r *seededRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

func rollN(r dice.Roller, count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

var _ dice.Roller = (*seededRoller)(nil)
