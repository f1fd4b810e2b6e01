package jwt

import (
	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/session"
)

// PayloadKey 鉴权中间件把会话放在 gin.Context 的这个键下
const PayloadKey = "payload"

func GetSession(c *gin.Context) (s *session.Session, exist bool) {
	payload, _ := c.Get(PayloadKey)
	s, exist = payload.(*session.Session)
	return
}
