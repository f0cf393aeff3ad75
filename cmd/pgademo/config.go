package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls the demo render. Every field can be set from the
// environment and overridden on the command line.
type Config struct {
	Width    int     `env:"PGADEMO_WIDTH"    envDefault:"800"`
	Height   int     `env:"PGADEMO_HEIGHT"   envDefault:"600"`
	Output   string  `env:"PGADEMO_OUTPUT"   envDefault:"demo.png"`
	Segments int     `env:"PGADEMO_SEGMENTS" envDefault:"64"`
	PanX     float32 `env:"PGADEMO_PAN_X"`
	PanY     float32 `env:"PGADEMO_PAN_Y"`
	Zoom     int     `env:"PGADEMO_ZOOM"`
	Debug    bool    `env:"PGADEMO_DEBUG"`
}

// loadConfig reads Config from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	return nil
}
