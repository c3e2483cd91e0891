package config

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Color modes for output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective editfile configuration
type Config struct {
	Regex   Regex   `koanf:"regex"`
	Files   Files   `koanf:"files"`
	Output  Output  `koanf:"output"`
	Logging Logging `koanf:"logging"`
}

// Regex holds pattern matching settings
type Regex struct {
	// MatchTimeout bounds a single match; zero disables the limit
	MatchTimeout time.Duration `koanf:"match_timeout"`
}

// Files holds settings for written files
type Files struct {
	CreateMode fs.FileMode `koanf:"create_mode"`
}

// Output holds terminal output settings
type Output struct {
	Color string `koanf:"color"`
}

// Logging holds log destination settings
type Logging struct {
	File bool `koanf:"file"`
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if c.Regex.MatchTimeout < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "regex.match_timeout must not be negative, got %s", c.Regex.MatchTimeout).
			WithDetail("key", "regex.match_timeout")
	}
	if c.Files.CreateMode&^fs.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigInvalid, "files.create_mode %#o has bits outside the permission range", uint32(c.Files.CreateMode)).
			WithDetail("key", "files.create_mode")
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigInvalid, "output.color must be one of auto, always, never; got %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	return nil
}

// tomlView is the on-disk shape of Config
type tomlView struct {
	Regex struct {
		MatchTimeout string `toml:"match_timeout"`
	} `toml:"regex"`
	Files struct {
		CreateMode string `toml:"create_mode"`
	} `toml:"files"`
	Output struct {
		Color string `toml:"color"`
	} `toml:"output"`
	Logging struct {
		File bool `toml:"file"`
	} `toml:"logging"`
}

// Dump renders the configuration as TOML in the same shape the
// configuration file uses
func (c *Config) Dump() ([]byte, error) {
	var v tomlView
	v.Regex.MatchTimeout = c.Regex.MatchTimeout.String()
	v.Files.CreateMode = fmt.Sprintf("%04o", uint32(c.Files.CreateMode.Perm()))
	v.Output.Color = c.Output.Color
	v.Logging.File = c.Logging.File
	return toml.Marshal(v)
}
