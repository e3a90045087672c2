package battles

import (
	"context"
	"sort"
	"sync"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// Expired records are dropped lazily on access.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*entities.BattleRecord
	seq   map[string]uint64
	next  uint64
}

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) (*InMemoryRepository, error) {
	if c == nil {
		return nil, errors.InvalidArgument("clock is required")
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*entities.BattleRecord),
		seq:   make(map[string]uint64),
	}, nil
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the record
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	record := *input.Record
	record.CreatedAt = r.clock.Now()
	record.ExpiresAt = record.CreatedAt.Add(ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	r.store[record.ID] = &record
	r.seq[record.ID] = r.next

	saved := record
	return &SaveOutput{Record: &saved}, nil
}

// Get retrieves a battle record by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}
	if input.BattleID == "" {
		return nil, errBattleIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.store[input.BattleID]
	if !exists {
		return nil, battleNotFound(input.BattleID)
	}
	if r.clock.Now().After(record.ExpiresAt) {
		r.remove(input.BattleID)
		return nil, battleNotFound(input.BattleID)
	}

	// Return a copy to prevent external modification
	found := *record
	return &GetOutput{Record: &found}, nil
}

// ListRecent returns unexpired records newest first
func (r *InMemoryRepository) ListRecent(_ context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}
	if input.Limit <= 0 {
		return nil, errLimitRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	live := make([]*entities.BattleRecord, 0, len(r.store))
	for id, record := range r.store {
		if now.After(record.ExpiresAt) {
			r.remove(id)
			continue
		}
		live = append(live, record)
	}

	sort.Slice(live, func(i, j int) bool {
		if !live[i].CreatedAt.Equal(live[j].CreatedAt) {
			return live[i].CreatedAt.After(live[j].CreatedAt)
		}
		return r.seq[live[i].ID] > r.seq[live[j].ID]
	})

	if len(live) > input.Limit {
		live = live[:input.Limit]
	}

	records := make([]*entities.BattleRecord, len(live))
	for i, record := range live {
		c := *record
		records[i] = &c
	}
	return &ListRecentOutput{Records: records}, nil
}

// remove must be called with the write lock held
func (r *InMemoryRepository) remove(id string) {
	delete(r.store, id)
	delete(r.seq, id)
}
