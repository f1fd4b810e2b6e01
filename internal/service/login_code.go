package service

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"wakeup-punch-system/internal/model"
)

const (
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength   = 6
)

// randomCode 成员码与手机登录码共用，6 位 [0-9A-Z]
func randomCode() (string, error) {
	size := big.NewInt(int64(len(codeAlphabet)))
	buf := make([]byte, codeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", errors.WithStack(err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// IssueLoginCode 为已登录成员生成手机登录码，过期前可重复使用
func (s *Service) IssueLoginCode(ctx context.Context, memberCode string) (*model.MobileLoginCode, error) {
	member, err := s.MemberByCode(ctx, memberCode)
	if err != nil {
		return nil, err
	}
	code, err := s.newCode()
	if err != nil {
		return nil, err
	}
	c, err := s.store.CreateMobileLoginCode(ctx, member.MemberCode, code, s.now().Add(s.codeTTL))
	if err != nil {
		return nil, err
	}
	s.log.Info("生成手机登录码", "member_code", member.MemberCode, "expires_at", c.ExpiresAt)
	return c, nil
}

// VerifyLoginCode 后端出错时按校验失败处理
func (s *Service) VerifyLoginCode(ctx context.Context, memberCode, code string) bool {
	memberCode, code = normalizeCode(memberCode), normalizeCode(code)
	if memberCode == "" || code == "" {
		return false
	}
	c, err := s.store.FindMobileLoginCode(ctx, memberCode, code, s.now())
	if err != nil {
		s.log.Warn("校验手机登录码失败", "member_code", memberCode, "error", err)
		return false
	}
	return c != nil
}

// MobileLogin 成员码 + 手机登录码
func (s *Service) MobileLogin(ctx context.Context, memberCode, code string) (*model.Member, error) {
	if !s.VerifyLoginCode(ctx, memberCode, code) {
		return nil, invalid("登录码错误或已过期")
	}
	return s.MemberByCode(ctx, memberCode)
}

// PurgeExpiredLoginCodes 定时任务调用
func (s *Service) PurgeExpiredLoginCodes(ctx context.Context) (int64, error) {
	n, err := s.store.PurgeExpiredLoginCodes(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("清理过期手机登录码", "count", n)
	}
	return n, nil
}
