package member

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/middleware"
)

// InitRouter 成员管理只对管理员开放
func (m *ModuleMember) InitRouter(r *gin.RouterGroup) {
	memberGroup := r.Group("/member", middleware.Auth(m.Revoker, middleware.RoleAdmin))
	{
		memberGroup.GET("/list", m.list)
		memberGroup.POST("/add", m.add)
		memberGroup.DELETE("/:id", m.remove)
	}
}
