package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/middleware"
	"wakeup-punch-system/internal/global/response"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/model"
	"wakeup-punch-system/internal/service"
	"wakeup-punch-system/internal/store"
	"wakeup-punch-system/test"
	"wakeup-punch-system/tools"
)

var now = time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)

type fixture struct {
	m       *ModuleAuth
	r       *gin.Engine
	svc     *service.Service
	revoker *session.MemoryRevoker
	member  *model.Member
}

func setup(t *testing.T, limit config.RateLimit) *fixture {
	hash, err := tools.PasswordEncrypt("hunter2")
	require.NoError(t, err)
	test.UseConfig(t, &config.Config{Auth: config.Auth{AdminID: "boss", AdminPasswordHash: hash}})

	svc := service.New(store.NewMemory(), service.WithClock(func() time.Time { return now }))
	member, err := svc.AddMember(context.Background(), "Kim")
	require.NoError(t, err)

	revoker := session.NewMemoryRevoker()
	m := &ModuleAuth{Service: svc, Revoker: revoker, Limiter: middleware.NewIPRateLimiter(limit)}
	return &fixture{m: m, r: test.Router(m), svc: svc, revoker: revoker, member: member}
}

func TestAdminLogin(t *testing.T) {
	f := setup(t, config.RateLimit{PerMinute: 600, Burst: 100})

	var out loginResp
	resp := test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/admin/login", "",
		gin.H{"admin_id": "boss", "password": "hunter2"}), &out)
	test.NoError(t, resp)
	assert.NotEmpty(t, out.Token)
	assert.True(t, out.Session.IsAdmin)
	assert.Empty(t, out.Session.MemberID)

	resp = test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/admin/login", "",
		gin.H{"admin_id": "boss", "password": "wrong"}), nil)
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)

	resp = test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/admin/login", "",
		gin.H{"admin_id": "someone", "password": "hunter2"}), nil)
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)

	resp = test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/admin/login", "", gin.H{}), nil)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestMemberLoginAndMe(t *testing.T) {
	f := setup(t, config.RateLimit{PerMinute: 600, Burst: 100})

	var out loginResp
	resp := test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/login", "",
		gin.H{"member_code": f.member.MemberCode}), &out)
	test.NoError(t, resp)
	assert.Equal(t, f.member.ID, out.Session.MemberID)
	assert.False(t, out.Session.IsAdmin)

	var me session.Session
	resp = test.Decode(t, test.Call(t, f.r, http.MethodGet, "/api/auth/me", out.Token, nil), &me)
	test.NoError(t, resp)
	assert.Equal(t, "Kim", me.Name)
	assert.Equal(t, f.member.MemberCode, me.MemberCode)

	resp = test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/login", "",
		gin.H{"member_code": "ZZZZZZ"}), nil)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := setup(t, config.RateLimit{PerMinute: 600, Burst: 100})
	token := test.Token(t, session.Session{MemberID: f.member.ID, Name: "Kim", MemberCode: f.member.MemberCode})

	resp := test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/logout", token, nil), nil)
	test.NoError(t, resp)

	w := test.Call(t, f.r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	test.ErrorEqual(t, response.ErrTokenInvalid, test.Decode(t, w, nil))
}

func TestMobileCodeLogin(t *testing.T) {
	f := setup(t, config.RateLimit{PerMinute: 600, Burst: 100})
	token := test.Token(t, session.Session{MemberID: f.member.ID, Name: "Kim", MemberCode: f.member.MemberCode})

	var code struct {
		Code      string    `json:"code"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	resp := test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/mobile/code", token, nil), &code)
	test.NoError(t, resp)
	require.Len(t, code.Code, 6)
	assert.True(t, code.ExpiresAt.After(now))

	var out loginResp
	resp = test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/mobile/login", "",
		gin.H{"member_code": f.member.MemberCode, "code": code.Code}), &out)
	test.NoError(t, resp)
	assert.Equal(t, f.member.ID, out.Session.MemberID)

	resp = test.Decode(t, test.Call(t, f.r, http.MethodPost, "/api/auth/mobile/login", "",
		gin.H{"member_code": f.member.MemberCode, "code": "000000"}), nil)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestMobileCodeNeedsMemberSession(t *testing.T) {
	f := setup(t, config.RateLimit{PerMinute: 600, Burst: 100})

	w := test.Call(t, f.r, http.MethodPost, "/api/auth/mobile/code", test.AdminToken(t), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = test.Call(t, f.r, http.MethodPost, "/api/auth/mobile/code", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRateLimited(t *testing.T) {
	f := setup(t, config.RateLimit{PerMinute: 1, Burst: 2})

	for i := 0; i < 2; i++ {
		w := test.Call(t, f.r, http.MethodPost, "/api/auth/login", "", gin.H{"member_code": f.member.MemberCode})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := test.Call(t, f.r, http.MethodPost, "/api/auth/login", "", gin.H{"member_code": f.member.MemberCode})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLoginHandlerDirect(t *testing.T) {
	f := setup(t, config.RateLimit{PerMinute: 600, Burst: 100})

	resp := test.DoRequest(t, f.m.login, gin.H{"member_code": " " + f.member.MemberCode + " "})
	test.NoError(t, resp)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])

	resp = test.DoRequest(t, f.m.login, gin.H{"member_code": "NOPE00"})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
	assert.Contains(t, resp.Message, "成员码不存在")

	resp = test.DoRequest(t, f.m.adminLogin, gin.H{"admin_id": "boss", "password": "wrong"})
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)
}
