package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/config"
)

// Cors 未配置 allow_origins 时允许所有来源
func Cors(c config.Cors) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: len(c.AllowOrigins) > 0,
		MaxAge:           12 * time.Hour,
	}
	if len(c.AllowOrigins) > 0 {
		cfg.AllowOrigins = c.AllowOrigins
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}
