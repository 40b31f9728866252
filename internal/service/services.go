package service

import (
	"github.com/avoronov/steam-sync-relay/internal/adapter"
	"github.com/avoronov/steam-sync-relay/internal/config"
	"github.com/avoronov/steam-sync-relay/internal/logger"
)

type Services struct {
	SyncService      SyncService
	ChallengeService ChallengeService
	AppInfoService   AppInfoService
}

func NewServices(gateways *adapter.Gateways, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		SyncService:      NewSyncService(gateways.Steam, logger),
		ChallengeService: NewChallengeService(gateways.Challenge, cfg.App, logger),
		AppInfoService:   NewAppInfoService(cfg.App, logger),
	}
}
