package mcpserver

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/circegen/circegen/internal/config"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	config.Config

	// Declaration cache settings.
	CacheEnabled bool          `env:"CIRCEGEN_MCP_CACHE_ENABLED" envDefault:"true"`
	CacheMaxSize int           `env:"CIRCEGEN_MCP_CACHE_MAX_SIZE" envDefault:"64"`
	CacheTTL     time.Duration `env:"CIRCEGEN_MCP_CACHE_TTL" envDefault:"15m"`
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CIRCEGEN_* environment variables.
// Any invalid value logs a warning and the hardcoded defaults are used instead.
func loadConfig() *serverConfig {
	c, err := loadConfigFrom(env.Options{})
	if err != nil {
		slog.Warn("invalid CIRCEGEN_* environment, using defaults", "error", err)
		return defaultConfig()
	}
	return c
}

func loadConfigFrom(opts env.Options) (*serverConfig, error) {
	c := &serverConfig{}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.CacheMaxSize <= 0 {
		return nil, fmt.Errorf("CIRCEGEN_MCP_CACHE_MAX_SIZE must be positive, got %d", c.CacheMaxSize)
	}
	if c.CacheTTL <= 0 {
		return nil, fmt.Errorf("CIRCEGEN_MCP_CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	return c, nil
}

func defaultConfig() *serverConfig {
	c, err := loadConfigFrom(env.Options{Environment: map[string]string{}})
	if err != nil {
		panic(fmt.Sprintf("mcpserver: default configuration is invalid: %v", err))
	}
	return c
}
