package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hendrywilliam/launchpad/src/verify"
)

const (
	DefaultHTTPBaseURL    = "https://discord.com/api/v10"
	DefaultAPIAddress     = ":8080"
	DefaultRequestTimeout = 10 * time.Second
)

var ErrMissingEnv = errors.New("missing required environment variable")

// AppConfig is read once at startup and handed to the server explicitly.
type AppConfig struct {
	DiscordAppsID      string
	DiscordBotToken    string
	DiscordPublicKey   string
	DiscordHTTPBaseURL string
	APIAddress         string
	RequestTimeout     time.Duration
	AppEnv             string
}

func LoadConfiguration() (AppConfig, error) {
	cfg := AppConfig{
		DiscordHTTPBaseURL: DefaultHTTPBaseURL,
		APIAddress:         DefaultAPIAddress,
		RequestTimeout:     DefaultRequestTimeout,
		AppEnv:             "development",
	}
	requiredEnv := map[string]*string{
		"DC_BOT_TOKEN":  &cfg.DiscordBotToken,
		"DC_PUBLIC_KEY": &cfg.DiscordPublicKey,
	}
	optionalEnv := map[string]*string{
		"DC_APPLICATION_ID": &cfg.DiscordAppsID,
		"DC_HTTP_BASE_URL":  &cfg.DiscordHTTPBaseURL,
		"API_ADDRESS":       &cfg.APIAddress,
		"APP_ENV":           &cfg.AppEnv,
	}
	for k, v := range requiredEnv {
		val, ok := os.LookupEnv(k)
		if !ok || len(val) == 0 {
			return AppConfig{}, fmt.Errorf("%w: %s", ErrMissingEnv, k)
		}
		*v = val
	}
	for k, v := range optionalEnv {
		if val, ok := os.LookupEnv(k); ok && len(val) != 0 {
			*v = val
		}
	}
	if val, ok := os.LookupEnv("DC_REQUEST_TIMEOUT"); ok && len(val) != 0 {
		timeout, err := time.ParseDuration(val)
		if err != nil {
			return AppConfig{}, fmt.Errorf("parse DC_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = timeout
	}
	return cfg, cfg.Validate()
}

func (cfg AppConfig) Validate() error {
	if _, err := verify.ParsePublicKey(cfg.DiscordPublicKey); err != nil {
		return fmt.Errorf("DC_PUBLIC_KEY: %w", err)
	}
	u, err := url.Parse(cfg.DiscordHTTPBaseURL)
	if err != nil {
		return fmt.Errorf("DC_HTTP_BASE_URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("DC_HTTP_BASE_URL: %q is not an absolute url", cfg.DiscordHTTPBaseURL)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("DC_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func (cfg AppConfig) IsProduction() bool {
	return cfg.AppEnv == "production"
}
