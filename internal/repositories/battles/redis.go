package battles

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/pkg/clock"
	redisclient "github.com/harsheetasys/pokemon-battle-simulation/internal/redis"
)

const (
	// Key pattern: battle:{id}
	battleKeyPrefix = "battle:"

	// recentKey is a sorted set of battle ids scored by creation time in unix nanos
	recentKey = "battles:recent"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// IndexLimit caps the recency index (optional, defaults to DefaultIndexLimit)
	IndexLimit int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IndexLimit < 0 {
		vb.Field("IndexLimit", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.IndexLimit == 0 {
		c.IndexLimit = DefaultIndexLimit
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	indexLimit int
}

// NewRedisRepository creates a new Redis repository for battle records
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      cfg.Clock,
		indexLimit: cfg.IndexLimit,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save writes the record with its TTL and adds it to the recency index in one round trip.
// The two keys may live on different cluster slots, so this is a pipeline rather than MULTI.
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	record := *input.Record
	now := r.clock.Now()
	record.CreatedAt = now
	record.ExpiresAt = now.Add(ttl)

	recordJSON, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle %s", record.ID)
	}

	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.buildKey(record.ID), recordJSON, ttl)
		pipe.ZAdd(ctx, recentKey, redis.Z{Score: float64(now.UnixNano()), Member: record.ID})
		// keep only the newest indexLimit ids
		pipe.ZRemRangeByRank(ctx, recentKey, 0, int64(-r.indexLimit-1))
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to store battle %s in Redis", record.ID)
	}

	return &SaveOutput{Record: &record}, nil
}

// Get retrieves a battle record by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}
	if input.BattleID == "" {
		return nil, errBattleIDRequired
	}

	recordJSON, err := r.client.Get(ctx, r.buildKey(input.BattleID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, battleNotFound(input.BattleID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get battle %s from Redis", input.BattleID)
	}

	record, err := r.decode(recordJSON)
	if err != nil {
		return nil, err
	}

	// Redis expiry is authoritative, but the clock may be ahead of it
	if r.clock.Now().After(record.ExpiresAt) {
		return nil, battleNotFound(input.BattleID)
	}

	return &GetOutput{Record: record}, nil
}

// ListRecent walks the recency index newest first, skipping and pruning ids whose record expired
func (r *redisRepository) ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}
	if input.Limit <= 0 {
		return nil, errLimitRequired
	}

	records := make([]*entities.BattleRecord, 0, input.Limit)
	batch := int64(input.Limit)
	now := r.clock.Now()

	for start := int64(0); len(records) < input.Limit; start += batch {
		ids, err := r.client.ZRevRange(ctx, recentKey, start, start+batch-1).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read battle index")
		}
		if len(ids) == 0 {
			break
		}

		cmds := make([]*redis.StringCmd, len(ids))
		_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, id := range ids {
				cmds[i] = pipe.Get(ctx, r.buildKey(id))
			}
			return nil
		})
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read battles")
		}

		var stale []interface{}
		for i, cmd := range cmds {
			raw, err := cmd.Bytes()
			if errors.Is(err, redis.Nil) {
				stale = append(stale, ids[i])
				continue
			}
			if err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read battle %s", ids[i])
			}

			record, err := r.decode(raw)
			if err != nil {
				slog.Warn("skipping unreadable battle record", "battle_id", ids[i], "error", err)
				continue
			}
			if now.After(record.ExpiresAt) {
				continue
			}

			records = append(records, record)
			if len(records) == input.Limit {
				break
			}
		}

		if len(stale) > 0 {
			if err := r.client.ZRem(ctx, recentKey, stale...).Err(); err != nil {
				slog.Warn("failed to prune battle index", "count", len(stale), "error", err)
			} else {
				// pruned members shift later pages up
				start -= int64(len(stale))
			}
		}

		if int64(len(ids)) < batch {
			break
		}
	}

	return &ListRecentOutput{Records: records}, nil
}

func (r *redisRepository) decode(raw []byte) (*entities.BattleRecord, error) {
	var record entities.BattleRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal battle record")
	}
	return &record, nil
}

func (r *redisRepository) buildKey(battleID string) string {
	return fmt.Sprintf("%s%s", battleKeyPrefix, battleID)
}
