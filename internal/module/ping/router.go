package ping

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/response"
)

const version = "1.0.0"

// InitRouter 存活检查，同时返回服务端的“今天”，前端据此显示日期
func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message":     "pong",
			"version":     version,
			"today":       p.Service.Today(),
			"wakeup_open": p.Service.InWakeupWindow(),
		})
	})
}
