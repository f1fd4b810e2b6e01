package wakeup

import (
	"log/slog"

	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/service"
)

var log *slog.Logger

type ModuleWakeup struct {
	Service *service.Service
	Revoker session.Revoker
}

func (*ModuleWakeup) GetName() string {
	return "Wakeup"
}

func (*ModuleWakeup) Init() {
	log = logger.New("Wakeup")
}
