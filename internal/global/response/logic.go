package response

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// gin.Context 中的键，Sentry 上报和请求日志从这里取错误与响应体
const (
	ErrorContextKey    = "error"
	ResponseContextKey = "response_body"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Error 业务错误。Code 同时决定 HTTP 状态码，cause 保留原始错误链
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
	Origin  string `json:"origin"`
	base    string
	cause   error
}

func newError(code int32, msg string) *Error {
	return &Error{Code: code, Message: msg, base: msg}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode 实现 sentry.CodedError
func (e *Error) GetCode() int32 {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 取原始错误上的堆栈，Sentry 用它定位出错位置
func (e *Error) StackTrace() pkgerrors.StackTrace {
	var st stackTracer
	if e.cause != nil && errors.As(e.cause, &st) {
		return st.StackTrace()
	}
	return nil
}

// Is 按错误码和原始消息匹配，WithOrigin/WithTips 派生出的错误仍能匹配
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.base == t.base
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// WithOrigin 附带原始错误；Origin 只在 debug 模式下返回给前端
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	if _, ok := err.(stackTracer); !ok {
		err = pkgerrors.WithStack(err)
	}
	c := e.clone()
	c.Origin = fmt.Sprintf("%+v", err)
	c.cause = err
	return c
}

// WithTips 在消息后追加提示，release 模式也可见
func (e *Error) WithTips(details ...string) *Error {
	c := e.clone()
	c.Message = e.Message + "：" + strings.Join(details, "，")
	return c
}
