package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Ranking.TopN)
	assert.Equal(t, 20, cfg.Ranking.MinScore)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.DefaultWindow)
	assert.Equal(t, Defaults().RateLimit.Endpoints, cfg.RateLimit.Endpoints)
	assert.Empty(t, cfg.Catalog)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, "career.yaml", `
server:
  port: 9000
  read-timeout: 5s
ranking:
  top-n: 10
  min-score: 0
log:
  json: true
rate-limit:
  enabled: false
  endpoints:
    - path: /recommendations
      method: POST
      limit: 1
      window: 1s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10, cfg.Ranking.TopN)
	assert.Equal(t, 0, cfg.Ranking.MinScore)
	assert.True(t, cfg.Log.JSON)
	assert.False(t, cfg.RateLimit.Enabled)
	require.Len(t, cfg.RateLimit.Endpoints, 1)
	assert.Equal(t, EndpointLimit{Path: "/recommendations", Method: "POST", Limit: 1, Window: time.Second}, cfg.RateLimit.Endpoints[0])
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeConfig(t, "career.json", `{"ranking": {"top-n": 3}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Ranking.TopN)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CAREER_SERVER_PORT", "9191")
	t.Setenv("CAREER_RANKING_MIN_SCORE", "40")
	t.Setenv("CAREER_RATE_LIMIT_WHITELIST", "10.0.0.1,10.0.0.2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, 40, cfg.Ranking.MinScore)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.Whitelist)
}

func TestLoadWith_BoundValuesWin(t *testing.T) {
	v := viper.New()
	v.Set("log.debug", true)

	cfg, err := LoadWith(v, "")
	require.NoError(t, err)
	assert.True(t, cfg.Log.Debug)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/career.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "career.yaml", "ranking:\n  top-n: 500\n")

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ranking.top-n")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "top-n zero", mutate: func(c *Config) { c.Ranking.TopN = 0 }, wantErr: "ranking.top-n"},
		{name: "min score above 100", mutate: func(c *Config) { c.Ranking.MinScore = 101 }, wantErr: "ranking.min-score"},
		{name: "missing catalog file", mutate: func(c *Config) { c.Catalog = "/nonexistent/catalog.json" }, wantErr: "catalog file not found"},
		{name: "negative default limit", mutate: func(c *Config) { c.RateLimit.DefaultLimit = -1 }, wantErr: "default-limit"},
		{name: "zero default window", mutate: func(c *Config) { c.RateLimit.DefaultWindow = 0 }, wantErr: "default-window"},
		{
			name:    "endpoint without leading slash",
			mutate:  func(c *Config) { c.RateLimit.Endpoints = []EndpointLimit{{Path: "summary", Method: "POST"}} },
			wantErr: "path must start",
		},
		{
			name:    "endpoint without method",
			mutate:  func(c *Config) { c.RateLimit.Endpoints = []EndpointLimit{{Path: "/summary"}} },
			wantErr: "method is required",
		},
		{
			name: "disabled rate limit skips checks",
			mutate: func(c *Config) {
				c.RateLimit.Enabled = false
				c.RateLimit.DefaultLimit = -1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 9000},
		Ranking: RankingConfig{MinScore: 0},
	}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Server.Port)
	assert.Equal(t, 15*time.Second, merged.Server.ReadTimeout)
	assert.Equal(t, 5, merged.Ranking.TopN)
	assert.Equal(t, 0, merged.Ranking.MinScore)
	assert.Equal(t, 600, merged.RateLimit.DefaultLimit)
	assert.Len(t, merged.RateLimit.Endpoints, len(Defaults().RateLimit.Endpoints))
	assert.NoError(t, merged.Validate())

	// The receiver is not modified.
	assert.Equal(t, 0, cfg.Ranking.TopN)
}
