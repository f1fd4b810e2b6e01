package wakeup

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/middleware"
)

func (m *ModuleWakeup) InitRouter(r *gin.RouterGroup) {
	wakeupGroup := r.Group("/wakeup")

	memberGroup := wakeupGroup.Group("", middleware.Auth(m.Revoker, middleware.RoleMember))
	{
		memberGroup.GET("/today", m.today)
		memberGroup.POST("/check", m.check)
		memberGroup.POST("/frog", m.frog)
	}

	wakeupGroup.PUT("/status", middleware.Auth(m.Revoker, middleware.RoleAdmin), m.setStatus)
}
