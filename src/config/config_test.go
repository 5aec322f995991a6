package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPublicKey = strings.Repeat("ab", 32)

func TestLoadConfiguration_Defaults(t *testing.T) {
	t.Setenv("DC_BOT_TOKEN", "token")
	t.Setenv("DC_PUBLIC_KEY", testPublicKey)
	t.Setenv("DC_HTTP_BASE_URL", "")
	t.Setenv("API_ADDRESS", "")
	t.Setenv("DC_REQUEST_TIMEOUT", "")

	cfg, err := LoadConfiguration()
	require.NoError(t, err)
	assert.Equal(t, "token", cfg.DiscordBotToken)
	assert.Equal(t, DefaultHTTPBaseURL, cfg.DiscordHTTPBaseURL)
	assert.Equal(t, DefaultAPIAddress, cfg.APIAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
}

func TestLoadConfiguration_Overrides(t *testing.T) {
	t.Setenv("DC_BOT_TOKEN", "token")
	t.Setenv("DC_PUBLIC_KEY", testPublicKey)
	t.Setenv("DC_APPLICATION_ID", "42")
	t.Setenv("DC_HTTP_BASE_URL", "http://localhost:9999/api")
	t.Setenv("API_ADDRESS", ":3000")
	t.Setenv("DC_REQUEST_TIMEOUT", "3s")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfiguration()
	require.NoError(t, err)
	assert.Equal(t, "42", cfg.DiscordAppsID)
	assert.Equal(t, "http://localhost:9999/api", cfg.DiscordHTTPBaseURL)
	assert.Equal(t, ":3000", cfg.APIAddress)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfiguration_MissingRequired(t *testing.T) {
	t.Setenv("DC_BOT_TOKEN", "")
	t.Setenv("DC_PUBLIC_KEY", testPublicKey)

	_, err := LoadConfiguration()
	require.ErrorIs(t, err, ErrMissingEnv)
	assert.Contains(t, err.Error(), "DC_BOT_TOKEN")
}

func TestLoadConfiguration_BadTimeout(t *testing.T) {
	t.Setenv("DC_BOT_TOKEN", "token")
	t.Setenv("DC_PUBLIC_KEY", testPublicKey)
	t.Setenv("DC_REQUEST_TIMEOUT", "soon")

	_, err := LoadConfiguration()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := AppConfig{
		DiscordPublicKey:   testPublicKey,
		DiscordHTTPBaseURL: DefaultHTTPBaseURL,
		RequestTimeout:     time.Second,
	}
	require.NoError(t, valid.Validate())

	badKey := valid
	badKey.DiscordPublicKey = "zz"
	assert.Error(t, badKey.Validate())

	badURL := valid
	badURL.DiscordHTTPBaseURL = "discord.com/api"
	assert.Error(t, badURL.Validate())

	badTimeout := valid
	badTimeout.RequestTimeout = 0
	assert.Error(t, badTimeout.Validate())
}
