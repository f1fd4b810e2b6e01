package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wakeup-punch-system/internal/global/response"
)

// ErrorEqual 只比较错误码和消息前缀，WithTips 追加的提示不影响
func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	t.Helper()
	require.Equal(t, expected.Code, resp.Code)
	require.Contains(t, resp.Message, expected.Message)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	t.Helper()
	require.Equal(t, int32(200), resp.Code, resp.Message)
}
