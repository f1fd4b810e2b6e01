// Package tracing 把 Sentry 性能追踪接到 GORM、Redis 和外部 HTTP 调用上
package tracing

import (
	"context"

	"github.com/getsentry/sentry-go"

	"wakeup-punch-system/config"
)

func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// StartSpan 在 ctx 的 transaction 下开子 span，没有父 span 时返回 nil
// 调用方用 Finish(span) 结束
func StartSpan(ctx context.Context, operation, description string) *sentry.Span {
	parent := sentry.SpanFromContext(ctx)
	if parent == nil {
		return nil
	}
	span := parent.StartChild(operation)
	span.Description = description
	return span
}

// Finish nil 安全；err 非空时标记失败
func Finish(span *sentry.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("error", err.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}
