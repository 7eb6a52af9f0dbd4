package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	App         *App
	HTTP        *HTTP
	Marketplace *Marketplace
	Tracking    *Tracking
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Marketplace struct {
	BaseURL string `env:"MARKETPLACE_ADDRESS"`
	APIKey  string `env:"MARKETPLACE_API_KEY"`
}

type Tracking struct {
	PollInterval        time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`
	PaymentPollInterval time.Duration `env:"PAYMENT_POLL_INTERVAL" envDefault:"4s"`
	ConfirmTokenTTL     time.Duration `env:"CONFIRM_TOKEN_TTL" envDefault:"2m"`
}

func NewConfig() (*Config, error) {
	// Local .env is optional; real env vars win either way.
	_ = godotenv.Load()

	var app App
	var http HTTP
	var marketplace Marketplace
	var tracking Tracking

	flag.StringVar(&http.HostString, "a", `localhost:8090`, "HTTP server endpoint")
	flag.StringVar(&marketplace.BaseURL, "r", "", "Marketplace API address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&marketplace)
	if err != nil {
		return nil, fmt.Errorf("error parsing marketplace config: %w", err)
	}
	err = env.Parse(&tracking)
	if err != nil {
		return nil, fmt.Errorf("error parsing tracking config: %w", err)
	}

	config := Config{
		App:         &app,
		HTTP:        &http,
		Marketplace: &marketplace,
		Tracking:    &tracking,
	}

	return &config, nil
}
