package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"wakeup-punch-system/internal/model"
)

// TodayStatus 当天的打卡情况以及两个按钮是否可用
type TodayStatus struct {
	Date      string           `json:"date"`
	Log       *model.WakeupLog `json:"log"`
	CanWakeup bool             `json:"can_wakeup"`
	CanFrog   bool             `json:"can_frog"`
}

func (s *Service) TodayStatus(ctx context.Context, memberID string) (*TodayStatus, error) {
	today := s.Today()
	log, err := s.store.GetWakeupLog(ctx, memberID, today)
	if err != nil {
		return nil, err
	}
	status := &TodayStatus{Date: today, Log: log}
	if log == nil {
		status.CanWakeup = s.InWakeupWindow()
		return status, nil
	}
	status.CanWakeup = !model.IsSuccess(log.WakeupStatus) && s.InWakeupWindow()
	status.CanFrog = model.IsSuccess(log.WakeupStatus) && !model.IsSuccess(log.FrogStatus)
	return status, nil
}

// CheckWakeup 只在时间窗口内接受；当天已成功时直接返回原记录，保留第一次的打卡时间
func (s *Service) CheckWakeup(ctx context.Context, memberID string) (*model.WakeupLog, error) {
	if !s.InWakeupWindow() {
		return nil, invalid("起床打卡只能在 %d:00-%d:00 之间进行", s.startHour, s.endHour)
	}
	if err := s.activeMember(ctx, memberID); err != nil {
		return nil, err
	}
	now := s.now()
	today := model.FormatDate(now, s.loc)
	existing, err := s.store.GetWakeupLog(ctx, memberID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil && model.IsSuccess(existing.WakeupStatus) {
		return existing, nil
	}
	log, err := s.store.UpsertWakeupEvent(ctx, memberID, today, model.KindWakeup, now)
	if err != nil {
		return nil, err
	}
	s.log.Info("起床打卡", "member_id", memberID, "date", today)
	return log, nil
}

// CatchFrog 需要当天起床打卡已成功
func (s *Service) CatchFrog(ctx context.Context, memberID string) (*model.WakeupLog, error) {
	if err := s.activeMember(ctx, memberID); err != nil {
		return nil, err
	}
	now := s.now()
	today := model.FormatDate(now, s.loc)
	existing, err := s.store.GetWakeupLog(ctx, memberID, today)
	if err != nil {
		return nil, err
	}
	if existing == nil || !model.IsSuccess(existing.WakeupStatus) {
		return nil, invalid("请先完成今天的起床打卡")
	}
	if model.IsSuccess(existing.FrogStatus) {
		return existing, nil
	}
	log, err := s.store.UpsertWakeupEvent(ctx, memberID, today, model.KindFrog, now)
	if err != nil {
		return nil, err
	}
	s.log.Info("完成青蛙任务", "member_id", memberID, "date", today)
	return log, nil
}

// SetWakeupStatus 管理端修正某天的两个状态
func (s *Service) SetWakeupStatus(ctx context.Context, memberID, date string, wakeup, frog model.Status) (*model.WakeupLog, error) {
	if strings.TrimSpace(memberID) == "" {
		return nil, invalid("成员 id 不能为空")
	}
	if _, err := model.ParseDate(date); err != nil {
		return nil, invalid("日期格式应为 YYYY-MM-DD")
	}
	if !wakeup.Valid() || !frog.Valid() {
		return nil, invalid("状态只能是 success 或 failed")
	}
	if err := s.activeMember(ctx, memberID); errors.Is(err, ErrMemberGone) {
		return nil, invalid("成员不存在")
	} else if err != nil {
		return nil, err
	}
	log, err := s.store.SetWakeupStatus(ctx, memberID, date, wakeup, frog)
	if err != nil {
		return nil, err
	}
	s.log.Info("修正打卡状态", "member_id", memberID, "date", date, "wakeup", wakeup, "frog", frog)
	return log, nil
}
