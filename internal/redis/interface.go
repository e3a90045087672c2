package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so single-node, cluster and sentinel
// deployments look the same to callers
type Client interface {
	redis.UniversalClient
}

// Nil is returned by Get when a key does not exist
const Nil = redis.Nil
