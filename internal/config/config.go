package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTexture   = "./data/s"
	DefaultStep      = math.Pi / 90
	DefaultFPS       = 60
	DefaultGlyphs    = "texture"
	DefaultPresenter = "ansi"
	DefaultTheme     = "default"
)

var (
	ErrInvalidStep      = errors.New("config: step must be a positive finite angle")
	ErrInvalidFPS       = errors.New("config: fps must be positive")
	ErrInvalidFrames    = errors.New("config: frames must not be negative")
	ErrInvalidPresenter = errors.New("config: unknown presenter")
)

// Presenters lists the accepted values of Config.Presenter.
var Presenters = []string{"ansi", "screen"}

type Config struct {
	Texture           string  `yaml:"texture"`
	Step              float64 `yaml:"step"`
	FPS               int     `yaml:"fps"`
	Glyphs            string  `yaml:"glyphs"`
	Presenter         string  `yaml:"presenter"`
	Theme             string  `yaml:"theme"`
	IgnoreWriteErrors bool    `yaml:"ignore_write_errors"`
	Frames            int     `yaml:"frames"`
}

func DefaultConfig() *Config {
	return &Config{
		Texture:   DefaultTexture,
		Step:      DefaultStep,
		FPS:       DefaultFPS,
		Glyphs:    DefaultGlyphs,
		Presenter: DefaultPresenter,
		Theme:     DefaultTheme,
	}
}

// Load reads a yaml file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if !(c.Step > 0) || math.IsInf(c.Step, 0) {
		return fmt.Errorf("%w, got %v", ErrInvalidStep, c.Step)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidFPS, c.FPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidFrames, c.Frames)
	}
	for _, p := range Presenters {
		if c.Presenter == p {
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrInvalidPresenter, c.Presenter)
}

// Interval is the pause between frames.
func (c *Config) Interval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}
