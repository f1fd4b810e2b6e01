package auth

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/jwt"
	"wakeup-punch-system/internal/global/response"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/model"
	"wakeup-punch-system/tools"
)

type adminLoginReq struct {
	AdminID  string `json:"admin_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginReq struct {
	MemberCode string `json:"member_code" binding:"required"`
}

type mobileLoginReq struct {
	MemberCode string `json:"member_code" binding:"required"`
	Code       string `json:"code" binding:"required"`
}

type loginResp struct {
	Token   string           `json:"token"`
	Session *session.Session `json:"session"`
}

func (m *ModuleAuth) adminLogin(c *gin.Context) {
	var req adminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	cfg := config.Get().Auth
	if cfg.AdminID == "" || cfg.AdminPasswordHash == "" {
		log.Warn("管理员账号未配置")
		response.Fail(c, response.ErrInvalidPassword)
		return
	}
	idMatch := subtle.ConstantTimeCompare([]byte(req.AdminID), []byte(cfg.AdminID)) == 1
	if !idMatch || !tools.PasswordCompare(cfg.AdminPasswordHash, req.Password) {
		log.Warn("管理员密码错误", "admin_id", req.AdminID, "ip", c.ClientIP())
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	issue(c, session.Session{Name: cfg.AdminID, IsAdmin: true})
}

func (m *ModuleAuth) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	member, err := m.Service.MemberByCode(c.Request.Context(), req.MemberCode)
	if err != nil {
		log.Warn("成员码登录失败", "member_code", req.MemberCode, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	issue(c, memberSession(member))
}

func (m *ModuleAuth) mobileLogin(c *gin.Context) {
	var req mobileLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	member, err := m.Service.MobileLogin(c.Request.Context(), req.MemberCode, req.Code)
	if err != nil {
		log.Warn("手机登录失败", "member_code", req.MemberCode, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	issue(c, memberSession(member))
}

// issueMobileCode 只能为当前登录的成员生成
func (m *ModuleAuth) issueMobileCode(c *gin.Context) {
	sess, _ := jwt.GetSession(c)
	code, err := m.Service.IssueLoginCode(c.Request.Context(), sess.MemberCode)
	if err != nil {
		log.Error("生成手机登录码失败", "member_code", sess.MemberCode, "error", err)
		response.Fail(c, response.FromError(err))
		return
	}
	response.Success(c, gin.H{
		"code":       code.Code,
		"expires_at": code.ExpiresAt,
	})
}

func (m *ModuleAuth) logout(c *gin.Context) {
	sess, _ := jwt.GetSession(c)
	if err := m.Revoker.Revoke(c.Request.Context(), sess.ID, sess.ExpiresAt); err != nil {
		log.Error("吊销会话失败", "session_id", sess.ID, "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	response.Success(c)
}

func (m *ModuleAuth) me(c *gin.Context) {
	sess, _ := jwt.GetSession(c)
	response.Success(c, sess)
}

func memberSession(member *model.Member) session.Session {
	return session.Session{
		MemberID:   member.ID,
		Name:       member.Name,
		MemberCode: member.MemberCode,
	}
}

func issue(c *gin.Context, s session.Session) {
	token, sess, err := jwt.CreateToken(s)
	if err != nil {
		log.Error("签发令牌失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	log.Info("登录成功", "name", sess.Name, "member_code", sess.MemberCode, "is_admin", sess.IsAdmin)
	response.Success(c, loginResp{Token: token, Session: sess})
}
