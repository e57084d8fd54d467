// Package config loads the optional graytree configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/graytree/config.toml, or
// ~/.config/graytree/config.toml when XDG_CONFIG_HOME is unset:
//
//	order  = "in"     # default for traverse and map: pre, in, post or level
//	format = "svg"    # default for render: dot, svg, pdf or png
//
//	[cache]
//	enabled    = true
//	ttl        = "168h"
//	redis_addr = "localhost:6379"   # share artifacts through Redis
//
// Every key is optional. Unknown keys are rejected so that typos surface.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graytree/pkg/errors"
)

const appName = "graytree"

// Orders lists the accepted traversal orders.
var Orders = []string{"pre", "in", "post", "level"}

// Formats lists the accepted render formats.
var Formats = []string{"dot", "svg", "pdf", "png"}

// Config is the decoded configuration.
type Config struct {
	Order  string      `toml:"order"`
	Format string      `toml:"format"`
	Cache  CacheConfig `toml:"cache"`
}

// CacheConfig controls the render artifact cache.
type CacheConfig struct {
	Enabled   bool     `toml:"enabled"`
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
}

// Duration is a time.Duration written as a string such as "90m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Order:  "pre",
		Format: "svg",
		Cache: CacheConfig{
			Enabled: true,
			TTL:     Duration{7 * 24 * time.Hour},
		},
	}
}

// Path returns the default location of the configuration file.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path. An empty path means [Path]; a
// missing file there yields [Default]. A missing file at an explicit path is
// an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of [Default] and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if !slices.Contains(Orders, c.Order) {
		return errors.New(errors.ErrCodeInvalidConfig, "order %q: must be one of %s", c.Order, strings.Join(Orders, ", "))
	}
	if !slices.Contains(Formats, c.Format) {
		return errors.New(errors.ErrCodeInvalidConfig, "format %q: must be one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}
