package auth

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/middleware"
)

// InitRouter 登录相关接口按 IP 限流
func (m *ModuleAuth) InitRouter(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")

	loginGroup := authGroup.Group("", m.Limiter.Middleware())
	{
		loginGroup.POST("/admin/login", m.adminLogin)
		loginGroup.POST("/login", m.login)
		loginGroup.POST("/mobile/login", m.mobileLogin)
	}

	authGroup.POST("/mobile/code", middleware.Auth(m.Revoker, middleware.RoleMember), m.Limiter.Middleware(), m.issueMobileCode)
	authGroup.POST("/logout", middleware.Auth(m.Revoker, middleware.RoleAny), m.logout)
	authGroup.GET("/me", middleware.Auth(m.Revoker, middleware.RoleAny), m.me)
}
