package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"wakeup-punch-system/internal/model"
)

const maxMustLength = 2000

// MustOverview 今天的记录和昨天的记录，没有时为 nil
type MustOverview struct {
	Date      string            `json:"date"`
	Today     *model.MustRecord `json:"today"`
	Yesterday *model.MustRecord `json:"yesterday"`
}

func (s *Service) MustRecords(ctx context.Context, memberID string) (*MustOverview, error) {
	overview := &MustOverview{Date: s.Today()}
	var err error
	if overview.Today, err = s.store.GetMustRecord(ctx, memberID, overview.Date); err != nil {
		return nil, err
	}
	if overview.Yesterday, err = s.store.GetMustRecord(ctx, memberID, s.yesterday()); err != nil {
		return nil, err
	}
	return overview, nil
}

// SaveMustRecord 当天重复保存会覆盖之前的内容
func (s *Service) SaveMustRecord(ctx context.Context, memberID, content string) (*model.MustRecord, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalid("MUST 内容不能为空")
	}
	if utf8.RuneCountInString(content) > maxMustLength {
		return nil, invalid("MUST 内容不能超过 %d 个字符", maxMustLength)
	}
	if err := s.activeMember(ctx, memberID); err != nil {
		return nil, err
	}
	return s.store.SaveMustRecord(ctx, memberID, s.Today(), content)
}

func (s *Service) DeleteMustRecord(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("记录 id 不能为空")
	}
	return s.store.DeleteMustRecord(ctx, id)
}
