package battle

import (
	"context"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/battle Service

// Service defines the battle orchestrator interface
type Service interface {
	SimulateBattle(ctx context.Context, input *SimulateBattleInput) (*SimulateBattleOutput, error)
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
	ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error)
}

// SimulateBattleInput defines the request for simulating a battle
type SimulateBattleInput struct {
	Pokemon1 string
	Pokemon2 string
	// Seed makes the battle reproducible; zero draws fresh randomness
	Seed uint64
}

// SimulateBattleOutput defines the response for simulating a battle
type SimulateBattleOutput struct {
	Record *entities.BattleRecord
	// Stored is false when the record could not be persisted
	Stored bool
}

// GetBattleInput defines the request for fetching a stored battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput defines the response for fetching a stored battle
type GetBattleOutput struct {
	Record *entities.BattleRecord
}

// ListBattlesInput defines the request for listing recent battles
type ListBattlesInput struct {
	// Limit defaults to DefaultListLimit and may not exceed MaxListLimit
	Limit int
}

// ListBattlesOutput defines the response for listing recent battles
type ListBattlesOutput struct {
	Records []*entities.BattleRecord
}
