//go:build !tinygo

package ulog

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/config"
)

// fileConfig mirrors the [log] table of a TOML configuration file.
type fileConfig struct {
	Level     string `toml:"level"`
	HideLevel bool   `toml:"hide_level"`
}

var defaultFileConfig = fileConfig{
	Level: "silent",
}

// NewConfigFromFile loads logger settings from a TOML file. The file holds a
// [log] table with the keys "level" (a level name such as "notice") and
// "hide_level". A missing file yields the defaults: silent, tag shown.
// The returned Config carries no sink; set one before use.
func NewConfigFromFile(path string) (Config, error) {
	fc := defaultFileConfig

	loader := config.New()
	if err := loader.RegisterStruct("log.", fc); err != nil {
		return Config{}, fmt.Errorf("failed to register config struct: %w", err)
	}

	// A missing file is not an error, the defaults stand.
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return Config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if v, found := loader.Get("log.level"); found {
		s, ok := v.(string)
		if !ok {
			return Config{}, fmt.Errorf("%w: config key log.level: expected string, got %T", ErrPkg, v)
		}
		fc.Level = s
	}
	if v, found := loader.Get("log.hide_level"); found {
		b, ok := v.(bool)
		if !ok {
			return Config{}, fmt.Errorf("%w: config key log.hide_level: expected bool, got %T", ErrPkg, v)
		}
		fc.HideLevel = b
	}

	level, err := ParseLevel(fc.Level)
	if err != nil {
		return Config{}, err
	}

	return Config{Level: level, HideLevel: fc.HideLevel}, nil
}
