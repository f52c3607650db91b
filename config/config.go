package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is resolved once at startup from a .env file (when present) and
// the process environment. Credentials are only required when the cloud
// engine is actually selected.
type Config struct {
	APIKey     string  `env:"NARRATE_API_KEY"`
	FolderID   string  `env:"NARRATE_FOLDER_ID"`
	Endpoint   string  `env:"NARRATE_TTS_ENDPOINT"`
	Voice      string  `env:"NARRATE_VOICE"`
	Speed      float64 `env:"NARRATE_SPEED"`
	Model      string  `env:"NARRATE_MODEL"`
	PiperModel string  `env:"NARRATE_PIPER_MODEL"`
	MinChars   int     `env:"NARRATE_MIN_CHARS"`
	MaxChars   int     `env:"NARRATE_MAX_CHARS"`
}

// Load reads .env from the working directory when one exists and parses the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
