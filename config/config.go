// Package config holds the renderer's tunable parameters, defaulted to
// the values the original source hard-coded at compile time, and
// optionally overridden from a TOML file.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config mirrors the compile-time constants of the original renderer,
// exposed here as runtime parameters per the spec's note that a
// reimplementation may do so.
type Config struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`

	Samples uint32 `toml:"samples"`
	Bounces uint32 `toml:"bounces"`

	Threads  uint32 `toml:"threads"` // 0 = runtime.NumCPU()
	TileSize uint32 `toml:"tile_size"`

	Gamma float32 `toml:"gamma"`

	Tonemap      bool `toml:"tonemap"`
	GammaCorrect bool `toml:"gamma_correct"`
}

// Default returns the configuration matching the spec's compile-time
// defaults: 1200x800, 500 samples, 50 bounces, auto thread count,
// 16x16 tiles, gamma 2.2, tone mapping off, gamma correction on.
func Default() Config {
	return Config{
		Width:        1200,
		Height:       800,
		Samples:      500,
		Bounces:      50,
		Threads:      0,
		TileSize:     16,
		Gamma:        2.2,
		Tonemap:      false,
		GammaCorrect: true,
	}
}

// Load reads a TOML file at path and overlays it onto Default(). Only
// fields present in the file are overridden.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
