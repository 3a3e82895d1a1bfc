// Package config loads overlay's TOML configuration file and applies
// environment overrides.
//
// The file lives at $XDG_CONFIG_HOME/overlay/config.toml (falling back to
// ~/.config/overlay/config.toml) unless a path is given explicitly. A missing
// file is not an error; every setting has a default:
//
//	comment_char = "#"
//	log_level = "info"
//
//	[cache]
//	backend = "file"         # file | redis | none
//	dir = ""                 # default: XDG cache dir
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//	max_body_bytes = 4194304
//
// Environment variables OVERLAY_COMMENT_CHAR, OVERLAY_LOG_LEVEL,
// OVERLAY_CACHE_BACKEND, OVERLAY_REDIS_ADDR and OVERLAY_ADDR override the
// corresponding settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/overlay/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "overlay"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the complete program configuration.
type Config struct {
	CommentChar string `toml:"comment_char"`
	LogLevel    string `toml:"log_level"`
	Cache       Cache  `toml:"cache"`
	Server      Server `toml:"server"`
}

// Cache configures the parse result cache.
type Cache struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// Server configures the HTTP service.
type Server struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Duration is a time.Duration written as a string such as "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CommentChar: "#",
		LogLevel:    "info",
		Cache: Cache{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			TTL:       Duration{24 * time.Hour},
		},
		Server: Server{
			Addr:         ":8080",
			MaxBodyBytes: 4 << 20,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads the config file at path, or the default path when path is
// empty, applies environment overrides and validates the result.
// An explicit path that does not exist is an error; a missing default file
// is not.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, fmt.Errorf("config path: %w", err)
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		case errors.Is(err, fs.ErrNotExist):
			return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
		default:
			return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, cfg.Validate()
}

// Parse decodes TOML text on top of the defaults and validates it.
// Environment overrides are not applied.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config")
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides settings from environment variables read by getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.CommentChar, "OVERLAY_COMMENT_CHAR")
	set(&c.LogLevel, "OVERLAY_LOG_LEVEL")
	set(&c.Cache.Backend, "OVERLAY_CACHE_BACKEND")
	set(&c.Cache.RedisAddr, "OVERLAY_REDIS_ADDR")
	set(&c.Server.Addr, "OVERLAY_ADDR")
}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if err := errs.ValidateCommentChar(c.CommentChar); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "comment_char")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "log_level: unknown level %q", c.LogLevel)
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "cache.backend: unknown backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "server.max_body_bytes must be positive")
	}
	return nil
}

// CommentRune returns the comment character as a rune.
// Call only after Validate succeeds.
func (c Config) CommentRune() rune {
	return []rune(c.CommentChar)[0]
}
