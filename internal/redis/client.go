// Package redis wraps the go-redis client so storage code depends on a small, mockable surface
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	ReadOnly        bool // For cluster mode routing

	// TLSInsecureSkipVerify accepts any server certificate; only meant for self-signed test setups
	TLSInsecureSkipVerify bool
}

// TLSConfig returns the client TLS settings, or nil when TLS is off
func (o *Options) TLSConfig() *tls.Config {
	if o == nil || !o.UseTLS {
		return nil
	}
	return &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: o.TLSInsecureSkipVerify, // #nosec G402 -- opt-in via config
	}
}

// Topology describes where the Redis servers live
type Topology struct {
	// Addrs lists the endpoints; with MasterName set they are sentinel addresses
	Addrs []string
	// MasterName selects Sentinel failover mode
	MasterName string
}

// New picks the client flavour from the topology: sentinel when a master name is set,
// a single-node client for one address and a cluster client for several.
func New(topology Topology, opts *Options) (Client, error) {
	switch {
	case topology.MasterName != "":
		return NewFailoverClient(topology.MasterName, topology.Addrs, opts)
	case len(topology.Addrs) == 1:
		return NewClient(topology.Addrs[0], opts)
	default:
		return NewClusterClient(topology.Addrs, opts)
	}
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		Password:        opts.Password,
		DB:              opts.DB,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		TLSConfig:       opts.TLSConfig(),
	}

	return redis.NewClient(redisOpts), nil
}

// NewClusterClient creates a Redis client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	clusterOpts := &redis.ClusterOptions{
		Addrs:        endpoints,
		Password:     opts.Password,
		MinIdleConns: opts.MinIdleConns,
		PoolSize:     opts.PoolSize,
		MaxRetries:   opts.MaxRetries,
		ReadOnly:     opts.ReadOnly,
		TLSConfig:    opts.TLSConfig(),
	}

	return redis.NewClusterClient(clusterOpts), nil
}

// NewFailoverClient creates a Redis client with Sentinel support
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	if masterName == "" {
		return nil, errors.New("redis: master name is required")
	}
	if len(sentinelAddrs) == 0 {
		return nil, errors.New("redis: at least one sentinel address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	failoverOpts := &redis.FailoverOptions{
		MasterName:    masterName,
		SentinelAddrs: sentinelAddrs,
		Password:      opts.Password,
		DB:            opts.DB,
		MinIdleConns:  opts.MinIdleConns,
		PoolSize:      opts.PoolSize,
		MaxRetries:    opts.MaxRetries,
		TLSConfig:     opts.TLSConfig(),
	}

	return redis.NewFailoverClient(failoverOpts), nil
}

// Ping checks connectivity, bounded by timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(ctx).Err()
}
