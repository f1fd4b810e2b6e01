package response

// 业务错误码，沿用 HTTP 状态码语义，5xx 会上报 Sentry
var (
	ErrInvalidRequest   = newError(400, "请求参数错误")
	ErrInvalidPassword  = newError(400, "账号或密码错误")
	ErrTokenInvalid     = newError(401, "登录已失效，请重新登录")
	ErrUnauthorized     = newError(403, "没有权限")
	ErrNotFound         = newError(404, "记录不存在")
	ErrAlreadyExists    = newError(409, "记录已存在")
	ErrTooManyRequests  = newError(429, "请求过于频繁，请稍后再试")
	ErrServerInternal   = newError(500, "服务器内部错误")
	ErrDatabase         = newError(500, "数据库错误")
	ErrStoreUnavailable = newError(503, "数据存储未配置")
)
