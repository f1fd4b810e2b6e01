package auth

import (
	"log/slog"

	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/middleware"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/service"
)

var log *slog.Logger

type ModuleAuth struct {
	Service *service.Service
	Revoker session.Revoker
	Limiter *middleware.IPRateLimiter
}

func (*ModuleAuth) GetName() string {
	return "Auth"
}

func (*ModuleAuth) Init() {
	log = logger.New("Auth")
}
