package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"wakeup-punch-system/internal/global/jwt"
	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/response"
	"wakeup-punch-system/internal/global/session"
)

type Role int

const (
	RoleAny    Role = iota // 任意已登录会话
	RoleMember             // 成员会话，带 MemberID
	RoleAdmin
)

// Auth 解析 Bearer 令牌、检查吊销列表和角色，通过后把会话放进上下文
func Auth(revoker session.Revoker, role Role) gin.HandlerFunc {
	log := logger.New("Auth")
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			return
		}

		claims, valid := jwt.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			return
		}
		sess := claims.Session()

		revoked, err := revoker.Revoked(c.Request.Context(), sess.ID)
		if err != nil {
			// 吊销列表不可用时放行，只记录日志
			log.Warn("查询会话吊销状态失败", "session_id", sess.ID, "error", err)
		} else if revoked {
			response.Fail(c, response.ErrTokenInvalid)
			return
		}

		switch {
		case role == RoleAdmin && !sess.IsAdmin,
			role == RoleMember && sess.MemberID == "":
			response.Fail(c, response.ErrUnauthorized)
			return
		}

		c.Set(jwt.PayloadKey, sess)
		c.Next()
	}
}
