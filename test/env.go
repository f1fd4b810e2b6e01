package test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/jwt"
	"wakeup-punch-system/internal/global/session"
)

const Secret = "test-secret"

// UseConfig 注入测试配置，测试结束后恢复
func UseConfig(t *testing.T, c *config.Config) {
	t.Helper()
	prev := config.Get()
	if c.JWT.AccessSecret == "" {
		c.JWT.AccessSecret = Secret
	}
	config.Set(c)
	t.Cleanup(func() { config.Set(prev) })
}

// Token 不经过登录接口直接签发令牌
func Token(t *testing.T, s session.Session) string {
	t.Helper()
	token, _, err := jwt.CreateToken(s)
	require.NoError(t, err)
	return token
}

func AdminToken(t *testing.T) string {
	return Token(t, session.Session{Name: "admin", IsAdmin: true})
}

type routable interface {
	Init()
	InitRouter(r *gin.RouterGroup)
}

// Router 挂在 /api 下，与线上前缀一致
func Router(modules ...routable) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	for _, m := range modules {
		m.Init()
		m.InitRouter(api)
	}
	return r
}
