package app

import (
	"fmt"
	"time"

	"github.com/oddsmith/punt/app/betting"
	"github.com/oddsmith/punt/app/database"
	"github.com/oddsmith/punt/internal/cache"
	"github.com/oddsmith/punt/internal/nexus"
)

// Persistence backends for the bet ledger.
const (
	PersistenceMemory   = "memory"
	PersistencePostgres = "postgres"
)

// Probability source kinds the lane wiring understands.
const (
	SourceStatic  = "static"
	SourceRatings = "ratings"
	SourceRemote  = "remote"
)

// CacheConfig selects the prediction-cache backend.
type CacheConfig struct {
	Backend       string        `env:"CACHE_BACKEND" env-default:"memory"`
	RedisAddr     string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" env-default:"10"`
	OpTimeout     time.Duration `env:"CACHE_OP_TIMEOUT" env-default:"50ms"`
}

// AuthConfig guards the mutating endpoints. Disabled by default: local paper
// trading should not need a token to place pretend money.
type AuthConfig struct {
	Enabled       bool          `env:"AUTH_ENABLED" env-default:"false"`
	Secret        string        `env:"AUTH_SECRET"`
	TokenDuration time.Duration `env:"AUTH_TOKEN_DURATION" env-default:"24h"`
}

// SourcesConfig wires a probability source kind into each market lane.
type SourcesConfig struct {
	Moneyline string `env:"SOURCES_MONEYLINE" env-default:"ratings"`
	Spread    string `env:"SOURCES_SPREAD" env-default:"static"`
	Total     string `env:"SOURCES_TOTAL" env-default:"static"`

	StaticProbability float64 `env:"SOURCES_STATIC_PROBABILITY" env-default:"0.5"`
	RatingsScale      float64 `env:"SOURCES_RATINGS_SCALE" env-default:"400"`

	RemoteURL     string        `env:"MODEL_SERVICE_URL"`
	RemoteTimeout time.Duration `env:"MODEL_SERVICE_TIMEOUT" env-default:"5s"`

	// CacheTTL > 0 wraps every lane's source with the prediction cache.
	CacheTTL time.Duration `env:"PREDICTION_CACHE_TTL" env-default:"0"`
}

// Config is the aggregated application configuration.
type Config struct {
	DB      database.Config
	Cache   CacheConfig
	Auth    AuthConfig
	Betting betting.Config
	Sources SourcesConfig

	AppHost     string `env:"APP_HOST" env-default:"localhost"`
	AppPort     string `env:"APP_PORT" env-default:"8080"`
	Env         string `env:"APP_ENV" env-default:"development"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	Persistence string `env:"PERSISTENCE" env-default:"memory"`
}

// Validate checks the cross-section settings the loader's struct tags cannot
// express. The database section is only required when postgres persistence
// is on; the betting section validates itself at module init.
func (c *Config) Validate() error {
	switch c.Persistence {
	case PersistenceMemory:
	case PersistencePostgres:
		if err := c.DB.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown persistence backend %q", c.Persistence)
	}

	switch c.Cache.Backend {
	case cache.MemoryBackend, cache.RedisBackend:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET is required when AUTH_ENABLED is set")
	}

	for _, lane := range []string{c.Sources.Moneyline, c.Sources.Spread, c.Sources.Total} {
		switch lane {
		case SourceStatic, SourceRatings:
		case SourceRemote:
			if c.Sources.RemoteURL == "" {
				return fmt.Errorf("MODEL_SERVICE_URL is required for the remote probability source")
			}
		default:
			return fmt.Errorf("unknown probability source kind %q", lane)
		}
	}

	return nil
}

// LoadConfig loads the application configuration from environment variables
// or a config file. The betting policy starts from its documented defaults;
// the environment only needs to name what it overrides.
func LoadConfig() (*Config, error) {
	c := &Config{Betting: *betting.GetDefaultConfig()}
	if err := nexus.NewLoader().Load(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
