package httpclient

import (
	"time"

	"github.com/go-resty/resty/v2"

	"wakeup-punch-system/internal/global/sentry/tracing"
)

// New 创建带 Sentry 追踪的 resty 客户端，Supabase 等外部服务各自持有一个
func New(timeout time.Duration) *resty.Client {
	c := resty.New().SetTimeout(timeout)

	if tracing.IsEnabled() {
		tracing.SetupRestyTracing(c)
	}
	return c
}
