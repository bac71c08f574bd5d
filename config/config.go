package config

import (
	"errors"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every environment option the service recognizes.
type Config struct {
	MongoURI        string `env:"MONGODB_URI"`
	DatabaseName    string `env:"MONGODB_DATABASE" envDefault:"campAid"`
	Port            string `env:"PORT" envDefault:"8000"`
	TokenSecret     string `env:"ACCESS_TOKEN_SECRET"`
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`
	AllowOrigins    string `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:5173,http://localhost:5174,https://camp-aid.web.app,https://camp-aid.firebaseapp.com"`
}

// Load reads a .env file when present and parses the environment.
func Load() (*Config, error) {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI environment variable is not set")
	}
	if cfg.TokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET environment variable is not set")
	}

	return cfg, nil
}
