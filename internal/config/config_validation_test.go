package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MissingSteamAPIKey(t *testing.T) {
	cfg := &StructuredConfig{}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSteamAPIKey)
}

func TestValidate_ProductionRequiresTurnstileSecret(t *testing.T) {
	cfg := &StructuredConfig{
		App:   App{Environment: "production"},
		Steam: Steam{APIKey: "key"},
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTurnstileSecret)
}

func TestValidate_ProductionWithSecret(t *testing.T) {
	cfg := &StructuredConfig{
		App:       App{Environment: "production"},
		Steam:     Steam{APIKey: "key"},
		Turnstile: Turnstile{SecretKey: "secret"},
	}

	require.NoError(t, cfg.validate())
}

func TestValidate_NonProductionSkipsTurnstileSecret(t *testing.T) {
	cfg := &StructuredConfig{
		Steam: Steam{APIKey: "key"},
	}

	require.NoError(t, cfg.validate())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}

	cfg.applyDefaults()

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:    "localhost:9000",
			RequestTimeout: time.Minute,
		},
	}

	cfg.applyDefaults()

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}
