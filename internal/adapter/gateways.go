package adapter

import (
	"github.com/avoronov/steam-sync-relay/internal/config"
	"github.com/avoronov/steam-sync-relay/internal/logger"
)

// Gateways bundles the outbound API clients used by the service layer.
type Gateways struct {
	Steam     SteamGateway
	Challenge ChallengeGateway
}

func NewGateways(cfg *config.StructuredConfig, logger *logger.Logger) *Gateways {
	logger.Info().Msg("creating outbound gateways...")

	return &Gateways{
		Steam:     NewSteamGateway(cfg.Steam, cfg.Server.RequestTimeout, logger),
		Challenge: NewChallengeGateway(cfg.Turnstile, cfg.Server.RequestTimeout, logger),
	}
}
