package stats

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/middleware"
)

// InitRouter month 参数为 YYYY-MM，缺省为当月
func (m *ModuleStats) InitRouter(r *gin.RouterGroup) {
	statsGroup := r.Group("/stats")

	statsGroup.GET("/me", middleware.Auth(m.Revoker, middleware.RoleMember), m.me)

	adminGroup := statsGroup.Group("", middleware.Auth(m.Revoker, middleware.RoleAdmin))
	{
		adminGroup.GET("/overview", m.overview)
		adminGroup.GET("/rank/export", m.exportRank)
	}
}
