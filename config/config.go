// Package config loads game and front-end settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds everything needed to start a session and its window.
type Config struct {
	Board   Board         `yaml:"board"`
	Tick    time.Duration `yaml:"tick"`
	Seed    uint64        `yaml:"seed"`
	Display Display       `yaml:"display"`
	Log     Log           `yaml:"log"`
}

type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Display struct {
	// CellSize is the edge length of one board cell in pixels.
	CellSize int  `yaml:"cell_size"`
	Ghost    bool `yaml:"ghost"`
	Debug    bool `yaml:"debug"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the classic 10x20 board with a 500ms tick.
func Default() Config {
	return Config{
		Board: Board{
			Width:  tetris.DefaultWidth,
			Height: tetris.DefaultHeight,
		},
		Tick: 500 * time.Millisecond,
		Display: Display{
			CellSize: 30,
			Ghost:    true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot start a game.
func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", tetris.ErrInvalidDimensions, c.Board.Width, c.Board.Height)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	if c.Display.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", c.Display.CellSize)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// NewGame builds a game from the board settings. A zero seed picks a random one.
func (c Config) NewGame() (*tetris.Game, error) {
	var opts []tetris.Option
	if c.Seed != 0 {
		opts = append(opts, tetris.WithSource(tetris.NewBagSource(c.Seed)))
	}
	return tetris.NewGame(c.Board.Width, c.Board.Height, opts...)
}

// Logger builds a sugared zap logger at the configured level.
func (c Config) Logger() (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}
