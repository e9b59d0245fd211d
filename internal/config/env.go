package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// #region env

// Env is the process-level configuration, read from the environment.
type Env struct {
	DBPath          string        `env:"STANCE_DB" envDefault:"stance_engine.db"`
	ProviderURL     string        `env:"PROVIDER_URL" envDefault:"http://localhost:11434/api/chat"`
	ProviderModel   string        `env:"PROVIDER_MODEL" envDefault:"llama3"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"60s"`
	BasePrompt      string        `env:"BASE_PROMPT" envDefault:"You are a conversational agent with an evolving stance."`
	ModeFile        string        `env:"MODE_FILE"`
}

// LoadEnv reads a .env file when present, then parses the environment.
func LoadEnv() (Env, error) {
	_ = godotenv.Load() // absent .env falls back to the process environment
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// #endregion env
