// Package config loads bookvoice settings from BOOKVOICE_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "BOOKVOICE_"

// Config holds the defaults that command-line flags may override.
type Config struct {
	BooksDir string `env:"BOOKS_DIR" envDefault:"books"`
	Engine   string `env:"ENGINE"    envDefault:"kokoro"`
	Voice    string `env:"VOICE"     envDefault:"af_heart"`

	// Kokoro-FastAPI server
	KokoroURL   string  `env:"KOKORO_URL"   envDefault:"http://localhost:8880"`
	KokoroModel string  `env:"KOKORO_MODEL" envDefault:"kokoro"`
	KokoroSpeed float64 `env:"KOKORO_SPEED" envDefault:"1.0"`

	// piper binary and its .onnx voice models
	PiperBin       string `env:"PIPER_BIN"        envDefault:"piper"`
	PiperVoicesDir string `env:"PIPER_VOICES_DIR" envDefault:"voices"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"   envDefault:"10m"`
	RetryCount      int           `env:"RETRY_COUNT"       envDefault:"2"`
	MaxSegmentChars int           `env:"MAX_SEGMENT_CHARS" envDefault:"4000"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	if cfg.MaxSegmentChars <= 0 {
		return nil, fmt.Errorf("%sMAX_SEGMENT_CHARS must be positive, got %d", envPrefix, cfg.MaxSegmentChars)
	}
	return cfg, nil
}
