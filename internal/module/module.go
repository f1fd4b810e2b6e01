package module

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/archive"
	"wakeup-punch-system/internal/global/middleware"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/module/auth"
	"wakeup-punch-system/internal/module/member"
	"wakeup-punch-system/internal/module/must"
	"wakeup-punch-system/internal/module/ping"
	"wakeup-punch-system/internal/module/stats"
	"wakeup-punch-system/internal/module/wakeup"
	"wakeup-punch-system/internal/service"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

// Deps 各模块共用的依赖，由 server 在启动时构建
type Deps struct {
	Service *service.Service
	Revoker session.Revoker
	Limiter *middleware.IPRateLimiter
	Archive archive.Archive // 可为 nil
}

// Modules 在这里注册模块
func Modules(d Deps) []Module {
	return []Module{
		&ping.ModulePing{Service: d.Service},
		&auth.ModuleAuth{Service: d.Service, Revoker: d.Revoker, Limiter: d.Limiter},
		&member.ModuleMember{Service: d.Service, Revoker: d.Revoker},
		&wakeup.ModuleWakeup{Service: d.Service, Revoker: d.Revoker},
		&must.ModuleMust{Service: d.Service, Revoker: d.Revoker},
		&stats.ModuleStats{Service: d.Service, Revoker: d.Revoker, Archive: d.Archive},
	}
}
