package battles

import "github.com/harsheetasys/pokemon-battle-simulation/internal/errors"

var (
	errInputRequired    = errors.InvalidArgument("input is required")
	errRecordRequired   = errors.InvalidArgument("battle record is required")
	errBattleIDRequired = errors.InvalidArgument("battle ID is required")
	errNegativeTTL      = errors.InvalidArgument("ttl must not be negative")
	errLimitRequired    = errors.InvalidArgument("limit must be positive")
)

func battleNotFound(id string) error {
	return errors.NotFoundf("battle %s not found", id).WithMeta("battle_id", id)
}
