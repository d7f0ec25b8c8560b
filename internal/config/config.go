// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CAREER_SERVER_PORT.
const EnvPrefix = "CAREER"

// Config is the full application configuration.
// Values come from defaults, then an optional config file, then CAREER_* environment variables.
type Config struct {
	Catalog   string          `mapstructure:"catalog"` // Optional path to a catalog JSON file
	Server    ServerConfig    `mapstructure:"server"`
	Ranking   RankingConfig   `mapstructure:"ranking"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate-limit"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read-timeout"`
	WriteTimeout    time.Duration `mapstructure:"write-timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
}

// RankingConfig holds recommendation defaults.
type RankingConfig struct {
	TopN     int `mapstructure:"top-n"`
	MinScore int `mapstructure:"min-score"` // Exclusive threshold
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// RateLimitConfig holds per-client request limits for the HTTP server.
type RateLimitConfig struct {
	Enabled         bool            `mapstructure:"enabled"`
	DefaultLimit    int             `mapstructure:"default-limit"`
	DefaultWindow   time.Duration   `mapstructure:"default-window"`
	CleanupInterval time.Duration   `mapstructure:"cleanup-interval"`
	Whitelist       []string        `mapstructure:"whitelist"`
	Blacklist       []string        `mapstructure:"blacklist"`
	Endpoints       []EndpointLimit `mapstructure:"endpoints"`
}

// EndpointLimit overrides the default limit for one method and path.
// A path ending in "/" matches every path below it.
type EndpointLimit struct {
	Path   string        `mapstructure:"path"`
	Method string        `mapstructure:"method"`
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
	Burst  int           `mapstructure:"burst"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Ranking: RankingConfig{
			TopN:     5,
			MinScore: 20,
		},
		RateLimit: RateLimitConfig{
			Enabled:         true,
			DefaultLimit:    600,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Endpoints: []EndpointLimit{
				{Path: "/recommendations/batch", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
				{Path: "/recommendations", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
				{Path: "/summary", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
			},
		},
	}
}

// SetDefaults registers every scalar default with v so environment overrides resolve.
// Endpoint overrides are list-valued and filled in by LoadWith when unset.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read-timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write-timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown-timeout", d.Server.ShutdownTimeout)
	v.SetDefault("ranking.top-n", d.Ranking.TopN)
	v.SetDefault("ranking.min-score", d.Ranking.MinScore)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("rate-limit.enabled", d.RateLimit.Enabled)
	v.SetDefault("rate-limit.default-limit", d.RateLimit.DefaultLimit)
	v.SetDefault("rate-limit.default-window", d.RateLimit.DefaultWindow)
	v.SetDefault("rate-limit.cleanup-interval", d.RateLimit.CleanupInterval)
	v.SetDefault("rate-limit.whitelist", []string{})
	v.SetDefault("rate-limit.blacklist", []string{})
}

// Load reads configuration into a fresh viper instance.
func Load(path string) (*Config, error) {
	return LoadWith(viper.New(), path)
}

// LoadWith reads configuration using v, which may already carry bound flags.
// An empty path skips the config file.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if !v.IsSet("rate-limit.endpoints") {
		cfg.RateLimit.Endpoints = Defaults().RateLimit.Endpoints
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Ranking.TopN < 1 || c.Ranking.TopN > 50 {
		return fmt.Errorf("config error: 'ranking.top-n' must be between 1 and 50, got %d", c.Ranking.TopN)
	}
	if c.Ranking.MinScore < 0 || c.Ranking.MinScore > 100 {
		return fmt.Errorf("config error: 'ranking.min-score' must be between 0 and 100, got %d", c.Ranking.MinScore)
	}

	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return c.RateLimit.validate()
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.DefaultLimit < 0 {
		return fmt.Errorf("config error: 'rate-limit.default-limit' must be non-negative")
	}
	if r.DefaultLimit > 0 && r.DefaultWindow <= 0 {
		return fmt.Errorf("config error: 'rate-limit.default-window' must be positive")
	}
	for i, ep := range r.Endpoints {
		if !strings.HasPrefix(ep.Path, "/") {
			return fmt.Errorf("config error: rate-limit endpoint %d: path must start with '/'", i)
		}
		if ep.Method == "" {
			return fmt.Errorf("config error: rate-limit endpoint %d: method is required", i)
		}
		if ep.Limit < 0 || ep.Burst < 0 {
			return fmt.Errorf("config error: rate-limit endpoint %d: limit and burst must be non-negative", i)
		}
		if ep.Limit > 0 && ep.Window <= 0 {
			return fmt.Errorf("config error: rate-limit endpoint %d: window must be positive", i)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}

	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if result.Server.ReadTimeout == 0 {
		result.Server.ReadTimeout = defaults.Server.ReadTimeout
	}
	if result.Server.WriteTimeout == 0 {
		result.Server.WriteTimeout = defaults.Server.WriteTimeout
	}
	if result.Server.ShutdownTimeout == 0 {
		result.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}

	if result.Ranking.TopN == 0 {
		result.Ranking.TopN = defaults.Ranking.TopN
	}
	// MinScore 0 is a valid threshold and is kept as is.

	if result.RateLimit.DefaultLimit == 0 {
		result.RateLimit.DefaultLimit = defaults.RateLimit.DefaultLimit
	}
	if result.RateLimit.DefaultWindow == 0 {
		result.RateLimit.DefaultWindow = defaults.RateLimit.DefaultWindow
	}
	if result.RateLimit.CleanupInterval == 0 {
		result.RateLimit.CleanupInterval = defaults.RateLimit.CleanupInterval
	}
	if len(result.RateLimit.Endpoints) == 0 {
		result.RateLimit.Endpoints = append([]EndpointLimit(nil), defaults.RateLimit.Endpoints...)
	}

	return result
}
