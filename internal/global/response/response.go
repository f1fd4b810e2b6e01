package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/sentry"
)

// ResponseBody 统一响应体，code 为 200 表示成功
type ResponseBody struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
	Origin  string `json:"origin,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data ...any) {
	body := ResponseBody{Code: 200, Message: "success"}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Fail HTTP 状态码与业务码一致；Origin 只在 debug 模式下返回
func Fail(c *gin.Context, err *Error) {
	c.Set(ErrorContextKey, err)
	sentry.CaptureException(c, err)

	body := ResponseBody{Code: err.Code, Message: err.Message}
	if config.Get().Mode == config.ModeDebug {
		body.Origin = err.Origin
	}
	c.Set(ResponseContextKey, body)
	c.AbortWithStatusJSON(httpStatus(err.Code), body)
}

func httpStatus(code int32) int {
	if code >= 400 && code < 600 {
		return int(code)
	}
	return http.StatusInternalServerError
}

// Recovery 在 defer 中调用，把 panic 转成 500 响应
func Recovery(c *gin.Context) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	logger.New("Recovery").Error("panic recovered",
		"path", c.Request.URL.Path,
		"error", fmt.Sprintf("%+v", err),
	)
	Fail(c, ErrServerInternal.WithOrigin(err))
}
