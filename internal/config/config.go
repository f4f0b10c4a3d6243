package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	Storage StorageConfig `koanf:"storage"`
	History HistoryConfig `koanf:"history"`
	Pokedex PokedexConfig `koanf:"pokedex"`
	Geo     GeoConfig     `koanf:"geo"`
	Log     LogConfig     `koanf:"log"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend string      `koanf:"backend"` // "sqlite", "redis", or "memory" (default: "sqlite")
	Path    string      `koanf:"path"`    // sqlite file, empty means the XDG data dir
	Redis   RedisConfig `koanf:"redis"`
}

// RedisConfig holds the redis backend connection settings.
type RedisConfig struct {
	Addr     string `koanf:"addr"` // default: "localhost:6379"
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Prefix   string `koanf:"prefix"` // default: "setlist:"
}

// HistoryConfig bounds the undo stacks.
type HistoryConfig struct {
	Limit int `koanf:"limit"` // max undoable commands per collection, 0 = unbounded
}

// PokedexConfig holds the PokéAPI browser settings.
type PokedexConfig struct {
	BaseURL       string `koanf:"base_url"`
	PageSize      int    `koanf:"page_size"`       // default: 20
	CacheTTLHours int    `koanf:"cache_ttl_hours"` // default: 24
}

// GeoConfig holds the place search settings.
type GeoConfig struct {
	BaseURL string `koanf:"base_url"`
	Limit   int    `koanf:"limit"` // default: 5
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // empty means the XDG state dir
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if cfg.Storage.Path != "" && cfg.Storage.Path != ":memory:" {
		cfg.Storage.Path = expandPath(cfg.Storage.Path)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	// Normalize base URLs (remove trailing slash)
	cfg.Pokedex.BaseURL = strings.TrimSuffix(cfg.Pokedex.BaseURL, "/")
	cfg.Geo.BaseURL = strings.TrimSuffix(cfg.Geo.BaseURL, "/")

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/setlist/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "setlist", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetStorageConfig returns the storage configuration with defaults applied.
func (c *Config) GetStorageConfig() StorageConfig {
	cfg := c.Storage

	switch cfg.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		cfg.Backend = BackendSQLite
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.Prefix == "" {
		cfg.Redis.Prefix = "setlist:"
	}
	if cfg.Redis.DB < 0 {
		cfg.Redis.DB = 0
	}

	return cfg
}

// HistoryLimit returns the undo limit, 0 meaning unbounded.
func (c *Config) HistoryLimit() int {
	return max(c.History.Limit, 0)
}

// GetPokedexConfig returns the pokedex configuration with defaults applied.
func (c *Config) GetPokedexConfig() PokedexConfig {
	cfg := c.Pokedex

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pokeapi.co/api/v2"
	}
	if cfg.PageSize <= 0 || cfg.PageSize > 100 {
		cfg.PageSize = 20
	}
	if cfg.CacheTTLHours <= 0 {
		cfg.CacheTTLHours = 24
	}

	return cfg
}

// CacheTTL returns the pokedex cache lifetime.
func (p PokedexConfig) CacheTTL() time.Duration {
	return time.Duration(p.CacheTTLHours) * time.Hour
}

// GetGeoConfig returns the place search configuration with defaults applied.
func (c *Config) GetGeoConfig() GeoConfig {
	cfg := c.Geo

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Limit <= 0 || cfg.Limit > 50 {
		cfg.Limit = 5
	}

	return cfg
}
