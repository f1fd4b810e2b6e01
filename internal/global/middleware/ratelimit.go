package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/response"
)

// IPRateLimiter 按客户端 IP 限流，登录和发码接口使用
type IPRateLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(c config.RateLimit) *IPRateLimiter {
	perMinute := c.PerMinute
	if perMinute <= 0 {
		perMinute = 20
	}
	burst := c.Burst
	if burst <= 0 {
		burst = 5
	}
	return &IPRateLimiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		limiters: make(map[string]*visitor),
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.limiters[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = v
	}
	v.lastSeen = now

	// 顺带清理长时间不活跃的 IP
	if len(l.limiters) > 1024 {
		for k, old := range l.limiters {
			if now.Sub(old.lastSeen) > 10*time.Minute {
				delete(l.limiters, k)
			}
		}
	}
	return v.limiter.Allow()
}

func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			response.Fail(c, response.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
