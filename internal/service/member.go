package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"wakeup-punch-system/internal/model"
	"wakeup-punch-system/internal/store"
)

const (
	maxNameLength  = 50
	addMemberTries = 3
)

func (s *Service) ListMembers(ctx context.Context) ([]model.Member, error) {
	return s.store.ListMembers(ctx)
}

// AddMember 生成 6 位成员码，成员码冲突时换一个重试
func (s *Service) AddMember(ctx context.Context, name string) (*model.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("名字不能为空")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, invalid("名字不能超过 %d 个字符", maxNameLength)
	}

	var err error
	for i := 0; i < addMemberTries; i++ {
		var code string
		if code, err = s.newCode(); err != nil {
			return nil, err
		}
		var member *model.Member
		member, err = s.store.AddMember(ctx, name, code)
		if err == nil {
			s.log.Info("新增成员", "member_id", member.ID, "name", name)
			return member, nil
		}
		if !errors.Is(err, store.ErrDuplicate) {
			return nil, err
		}
		s.log.Warn("成员码冲突，重新生成", "code", code, "attempt", i+1)
	}
	return nil, err
}

func (s *Service) DeleteMember(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("成员 id 不能为空")
	}
	if err := s.store.DeleteMember(ctx, id); err != nil {
		return err
	}
	s.log.Info("删除成员", "member_id", id)
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// MemberByCode 成员码登录，成员码不存在是校验错误
func (s *Service) MemberByCode(ctx context.Context, code string) (*model.Member, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, invalid("成员码不能为空")
	}
	member, err := s.store.GetMemberByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, invalid("成员码不存在")
	}
	return member, nil
}

// activeMember 写入打卡记录前确认成员仍在名单中
func (s *Service) activeMember(ctx context.Context, memberID string) error {
	m, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMemberGone
	}
	return nil
}
