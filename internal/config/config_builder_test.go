package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	oldArgs := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestGetStructuredConfig_EnvOnly(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STEAM_API_KEY": "env_steam_key",
	})
	resetFlags(t)

	cfg, err := GetStructuredConfig()

	require.NoError(t, err)
	assert.Equal(t, "env_steam_key", cfg.Steam.APIKey)
	// defaults applied
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestGetStructuredConfig_EnvWinsOverFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STEAM_API_KEY": "env_steam_key",
	})
	resetFlags(t, "-steam-api-key", "flag_steam_key", "-a", "localhost:9000")

	cfg, err := GetStructuredConfig()

	require.NoError(t, err)
	assert.Equal(t, "env_steam_key", cfg.Steam.APIKey)
	// flags still fill fields the environment left empty
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}

func TestGetStructuredConfig_ValidationFailure(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_ENVIRONMENT": "production",
		"STEAM_API_KEY":   "env_steam_key",
	})
	resetFlags(t)

	cfg, err := GetStructuredConfig()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTurnstileSecret)
	assert.Nil(t, cfg)
}

func TestGetStructuredConfig_MissingAPIKey(t *testing.T) {
	clearEnvVars(t)
	resetFlags(t)

	cfg, err := GetStructuredConfig()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSteamAPIKey)
	assert.Nil(t, cfg)
}
