package member

import (
	"log/slog"

	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/service"
)

var log *slog.Logger

type ModuleMember struct {
	Service *service.Service
	Revoker session.Revoker
}

func (*ModuleMember) GetName() string {
	return "Member"
}

func (*ModuleMember) Init() {
	log = logger.New("Member")
}
