package ping

import (
	"log/slog"

	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/service"
)

var log *slog.Logger

type ModulePing struct {
	Service *service.Service
}

func (p *ModulePing) GetName() string {
	return "Ping"
}

func (p *ModulePing) Init() {
	log = logger.New("Ping")
}
