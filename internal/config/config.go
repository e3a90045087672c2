// Package config loads service settings from defaults, an optional YAML file and flags
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/clients/external"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/pokedex"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/redis"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/repositories/battles"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Log levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config is the complete service configuration
type Config struct {
	Server  Server  `yaml:"server"`
	PokeAPI PokeAPI `yaml:"pokeapi"`
	Redis   Redis   `yaml:"redis"`
	Battles Battles `yaml:"battles"`
	Logging Logging `yaml:"logging"`
}

// Server holds listener settings
type Server struct {
	GRPCPort        int           `yaml:"grpc_port"`
	HTTPPort        int           `yaml:"http_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// PokeAPI holds provider settings
type PokeAPI struct {
	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxConcurrency int           `yaml:"max_concurrency"`
}

// Redis holds battle history storage settings. No addresses means in-memory storage.
type Redis struct {
	Addrs      []string `yaml:"addrs"`
	MasterName string   `yaml:"master_name"`
	Password   string   `yaml:"password"`
	DB         int      `yaml:"db"`
	PoolSize   int      `yaml:"pool_size"`
	UseTLS     bool     `yaml:"use_tls"`

	// TLSInsecureSkipVerify disables certificate checks when UseTLS is set
	TLSInsecureSkipVerify bool `yaml:"tls_insecure_skip_verify"`
}

// Battles holds battle record settings
type Battles struct {
	TTL            time.Duration `yaml:"ttl"`
	ReplayInterval time.Duration `yaml:"replay_interval"`
	IndexLimit     int           `yaml:"index_limit"`
}

// Logging holds logger settings
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Server: Server{
			GRPCPort:        50051,
			HTTPPort:        8000,
			ShutdownTimeout: 30 * time.Second,
		},
		PokeAPI: PokeAPI{
			BaseURL:        external.DefaultBaseURL,
			Timeout:        external.DefaultHTTPTimeout,
			MaxConcurrency: pokedex.DefaultMaxConcurrency,
		},
		Battles: Battles{
			TTL:            battles.DefaultTTL,
			ReplayInterval: 500 * time.Millisecond,
			IndexLimit:     battles.DefaultIndexLimit,
		},
		Logging: Logging{
			Level:  LogLevelInfo,
			Format: LogFormatJSON,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config file %s", path)
	}

	return cfg, nil
}

// Validate checks every section and reports all problems at once
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("server.http_port", c.Server.HTTPPort, 1, 65535, vb)
	if c.Server.GRPCPort == c.Server.HTTPPort {
		vb.Field("server.http_port", "must differ from server.grpc_port")
	}
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}

	errors.ValidateRequired("pokeapi.base_url", c.PokeAPI.BaseURL, vb)
	if c.PokeAPI.Timeout <= 0 {
		vb.Field("pokeapi.timeout", "must be positive")
	}
	errors.ValidateRange("pokeapi.max_concurrency", c.PokeAPI.MaxConcurrency, 1, 64, vb)

	if c.Redis.MasterName != "" && len(c.Redis.Addrs) == 0 {
		vb.Field("redis.addrs", "sentinel addresses are required when master_name is set")
	}
	if c.Redis.PoolSize < 0 {
		vb.Field("redis.pool_size", "must not be negative")
	}

	if c.Battles.TTL <= 0 {
		vb.Field("battles.ttl", "must be positive")
	}
	if c.Battles.ReplayInterval < 0 {
		vb.Field("battles.replay_interval", "must not be negative")
	}
	if c.Battles.IndexLimit <= 0 {
		vb.Field("battles.index_limit", "must be positive")
	}

	errors.ValidateEnum("logging.level", c.Logging.Level,
		[]string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format,
		[]string{LogFormatJSON, LogFormatText}, vb)

	return vb.Build()
}

// UsesRedis reports whether battle history should live in redis
func (r Redis) UsesRedis() bool {
	return len(r.Addrs) > 0
}

// Topology returns the redis server layout
func (r Redis) Topology() redis.Topology {
	return redis.Topology{Addrs: r.Addrs, MasterName: r.MasterName}
}

// Options returns the redis client options
func (r Redis) Options() *redis.Options {
	return &redis.Options{
		Password: r.Password,
		DB:       r.DB,
		PoolSize: r.PoolSize,
		UseTLS:   r.UseTLS,

		TLSInsecureSkipVerify: r.TLSInsecureSkipVerify,
	}
}
