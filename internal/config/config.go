// Package config loads Vitrine's TOML configuration.
//
// Configuration is optional: every field has a usable default, so the CLI
// and server run without a config file. The file location defaults to
// ~/.config/vitrine/config.toml and can be overridden with --config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vitrine-dev/vitrine/pkg/errors"
)

// Cache backend names accepted in the config file.
const (
	CacheBackendFile   = "file"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendOff    = "off"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"` // listen address, defaults to ":8080"
}

// Duration decodes TOML duration strings like "24h" or "90s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// CacheConfig selects and configures the render cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"` // file | memory | redis | off
	Dir     string      `toml:"dir"`     // file backend directory
	Redis   RedisConfig `toml:"redis"`
	TTL     Duration    `toml:"ttl"` // payload lifetime, defaults to 24h
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig selects the bundle store backend.
type StoreConfig struct {
	Backend string `toml:"backend"` // memory | mongo
	Mongo   struct {
		URI        string `toml:"uri"`
		Database   string `toml:"database"`
		Collection string `toml:"collection"`
	} `toml:"mongo"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache: CacheConfig{
			Backend: CacheBackendFile,
			TTL:     Duration(24 * time.Hour),
		},
		Store: StoreConfig{Backend: "memory"},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vitrine", "config.toml"), nil
}

// Load reads the config file at path, applying defaults for absent fields.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, cfg.validate()
}

// validate rejects unknown backend names.
func (c Config) validate() error {
	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendMemory, CacheBackendRedis, CacheBackendOff, "":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %s", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "memory", "mongo", "":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend: %s", c.Store.Backend)
	}
	return nil
}
