// Package battles stores finished battle records for retrieval and replay
package battles

import (
	"context"
	"time"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/harsheetasys/pokemon-battle-simulation/internal/repositories/battles Repository

const (
	// DefaultTTL is how long a record is kept when SaveInput.TTL is zero
	DefaultTTL = 24 * time.Hour

	// DefaultIndexLimit caps how many ids the recency index remembers
	DefaultIndexLimit = 1000
)

// Repository persists immutable battle records
type Repository interface {
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error)
}

// SaveInput contains the record to store. The repository stamps CreatedAt and ExpiresAt.
type SaveInput struct {
	Record *entities.BattleRecord
	TTL    time.Duration
}

// SaveOutput contains the stored record
type SaveOutput struct {
	Record *entities.BattleRecord
}

// GetInput identifies a record
type GetInput struct {
	BattleID string
}

// GetOutput contains the record
type GetOutput struct {
	Record *entities.BattleRecord
}

// ListRecentInput bounds a recency listing
type ListRecentInput struct {
	Limit int
}

// ListRecentOutput holds records newest first
type ListRecentOutput struct {
	Records []*entities.BattleRecord
}

func validateSave(input *SaveInput) error {
	switch {
	case input == nil:
		return errInputRequired
	case input.Record == nil:
		return errRecordRequired
	case input.Record.ID == "":
		return errBattleIDRequired
	case input.TTL < 0:
		return errNegativeTTL
	}
	return nil
}
