package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	API APIConfig `envPrefix:"API_"`
}

type APIConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:3002/bp/products"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
