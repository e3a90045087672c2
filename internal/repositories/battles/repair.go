package battles

import (
	"context"
	"log/slog"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
)

// scanBatch is the COUNT hint for each SCAN call
const scanBatch = 100

// Repairer fixes battle history left inconsistent by crashes, manual edits or old formats
type Repairer interface {
	Repair(ctx context.Context, input *RepairInput) (*RepairOutput, error)
}

// RepairInput controls a repair pass
type RepairInput struct {
	// DryRun reports problems without changing anything
	DryRun bool
}

// RepairOutput summarises a repair pass. Keys are listed whether or not they were changed.
type RepairOutput struct {
	Checked int
	// Corrupt lists record keys that do not decode as a battle record
	Corrupt []string
	// Reindexed lists battle ids that had a record but no recency index entry,
	// newest first, leaving out records older than the newest IndexLimit entries
	Reindexed []string
	// Pruned lists index entries whose record no longer exists
	Pruned []string
}

// masterIterator is implemented by cluster clients
type masterIterator interface {
	ForEachMaster(ctx context.Context, fn func(ctx context.Context, client *redis.Client) error) error
}

// NewRedisRepairer creates a Repairer over the same keys the Redis repository writes
func NewRedisRepairer(cfg *Config) (Repairer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      cfg.Clock,
		indexLimit: cfg.IndexLimit,
	}, nil
}

// Ensure redisRepository implements Repairer
var _ Repairer = (*redisRepository)(nil)

// Repair removes undecodable records, prunes index entries whose record is gone and
// re-indexes orphaned records that are recent enough to survive the index limit
func (r *redisRepository) Repair(ctx context.Context, input *RepairInput) (*RepairOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}

	out := &RepairOutput{}
	var orphans []indexEntry

	err := r.scanKeys(ctx, battleKeyPrefix+"*", func(key string) error {
		out.Checked++
		orphan, err := r.repairRecord(ctx, key, input.DryRun, out)
		if orphan != nil {
			orphans = append(orphans, *orphan)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	live, err := r.pruneIndex(ctx, input.DryRun, out)
	if err != nil {
		return nil, err
	}

	if err := r.reindex(ctx, live, orphans, input.DryRun, out); err != nil {
		return nil, err
	}

	slog.Info("battle history repair finished",
		"dry_run", input.DryRun,
		"checked", out.Checked,
		"corrupt", len(out.Corrupt),
		"reindexed", len(out.Reindexed),
		"pruned", len(out.Pruned))

	return out, nil
}

// indexEntry is one member of the recency index, or a record that should be
type indexEntry struct {
	id     string
	score  float64
	orphan bool
}

// repairRecord deletes key when it is corrupt and returns the record's index entry
// when the record is missing from the index
func (r *redisRepository) repairRecord(ctx context.Context, key string, dryRun bool, out *RepairOutput) (*indexEntry, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		// expired between SCAN and GET
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", key)
	}

	record, err := r.decode(raw)
	if err != nil || record.ID == "" || r.buildKey(record.ID) != key {
		out.Corrupt = append(out.Corrupt, key)
		if dryRun {
			return nil, nil
		}
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to delete %s", key)
		}
		return nil, nil
	}

	_, err = r.client.ZScore(ctx, recentKey, record.ID).Result()
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to check index for %s", record.ID)
	}

	return &indexEntry{id: record.ID, score: float64(record.CreatedAt.UnixNano()), orphan: true}, nil
}

// pruneIndex drops index members whose record is gone and returns the members that remain
func (r *redisRepository) pruneIndex(ctx context.Context, dryRun bool, out *RepairOutput) ([]indexEntry, error) {
	members, err := r.client.ZRangeWithScores(ctx, recentKey, 0, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read battle index")
	}

	var stale []interface{}
	live := make([]indexEntry, 0, len(members))
	for _, m := range members {
		id, _ := m.Member.(string)
		n, err := r.client.Exists(ctx, r.buildKey(id)).Result()
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to check battle %s", id)
		}
		if n == 0 {
			out.Pruned = append(out.Pruned, id)
			stale = append(stale, id)
			continue
		}
		live = append(live, indexEntry{id: id, score: m.Score})
	}

	if dryRun || len(stale) == 0 {
		return live, nil
	}
	if err := r.client.ZRem(ctx, recentKey, stale...).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to prune battle index")
	}
	return live, nil
}

// reindex adds back the orphans that rank among the newest indexLimit entries.
// Older orphans were trimmed by Save on purpose and are left alone.
func (r *redisRepository) reindex(ctx context.Context, live, orphans []indexEntry, dryRun bool, out *RepairOutput) error {
	ranked := append(live, orphans...)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id > ranked[j].id
	})
	if len(ranked) > r.indexLimit {
		ranked = ranked[:r.indexLimit]
	}

	var members []redis.Z
	for _, e := range ranked {
		if e.orphan {
			out.Reindexed = append(out.Reindexed, e.id)
			members = append(members, redis.Z{Score: e.score, Member: e.id})
		}
	}

	if dryRun {
		return nil
	}
	if len(members) > 0 {
		if err := r.client.ZAdd(ctx, recentKey, members...).Err(); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to re-index battles")
		}
	}
	if err := r.client.ZRemRangeByRank(ctx, recentKey, 0, int64(-r.indexLimit-1)).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to trim battle index")
	}
	return nil
}

// scanKeys visits every key matching pattern, on every master when clustered
func (r *redisRepository) scanKeys(ctx context.Context, pattern string, fn func(key string) error) error {
	scan := func(ctx context.Context, client redis.Cmdable) error {
		iter := client.Scan(ctx, 0, pattern, scanBatch).Iterator()
		for iter.Next(ctx) {
			if err := fn(iter.Val()); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan battle keys")
		}
		return nil
	}

	if cluster, ok := r.client.(masterIterator); ok {
		return cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
			return scan(ctx, node)
		})
	}
	return scan(ctx, r.client)
}
