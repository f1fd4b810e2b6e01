package must

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/middleware"
)

func (m *ModuleMust) InitRouter(r *gin.RouterGroup) {
	mustGroup := r.Group("/must")

	memberGroup := mustGroup.Group("", middleware.Auth(m.Revoker, middleware.RoleMember))
	{
		memberGroup.GET("/today", m.today)
		memberGroup.POST("/save", m.save)
	}

	mustGroup.DELETE("/:id", middleware.Auth(m.Revoker, middleware.RoleAdmin), m.remove)
}
