package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

// Environment variable names, exported so tests and deploy tooling can
// reference them without duplicating strings.
const (
	EnvBaseURL        = "CARDANO_WALLET_BASE_URL"
	EnvRequestTimeout = "CARDANO_WALLET_REQUEST_TIMEOUT"
	EnvLogLevel       = "CARDANO_WALLET_LOG_LEVEL"
	EnvLogWarnStack   = "CARDANO_WALLET_LOG_WARN_STACK"
)

type Config struct {
	App    AppConfig
	Wallet WalletConfig
}

type AppConfig struct {
	LogLevel     string `envconfig:"CARDANO_WALLET_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CARDANO_WALLET_LOG_WARN_STACK" default:"false"`
}

type WalletConfig struct {
	BaseURL        string        `envconfig:"CARDANO_WALLET_BASE_URL" required:"true" validate:"required,url"`
	RequestTimeout time.Duration `envconfig:"CARDANO_WALLET_REQUEST_TIMEOUT" default:"15s" validate:"min=0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	validate := validator.New()
	if err := validate.Struct(c.Wallet); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

// NormalizedBaseURL returns the configured base URL with exactly one trailing
// slash, the form every endpoint path is rooted at.
func (w WalletConfig) NormalizedBaseURL() string {
	return strings.TrimRight(w.BaseURL, "/") + "/"
}
