package handler

import (
	"github.com/avoronov/steam-sync-relay/internal/handler/http"
	"github.com/avoronov/steam-sync-relay/internal/logger"
	"github.com/avoronov/steam-sync-relay/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
