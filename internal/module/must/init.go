package must

import (
	"log/slog"

	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/service"
)

var log *slog.Logger

type ModuleMust struct {
	Service *service.Service
	Revoker session.Revoker
}

func (*ModuleMust) GetName() string {
	return "Must"
}

func (*ModuleMust) Init() {
	log = logger.New("Must")
}
