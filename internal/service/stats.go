package service

import (
	"context"

	"wakeup-punch-system/internal/model"
	"wakeup-punch-system/internal/score"
)

type MemberDashboard struct {
	Month    string              `json:"month"`
	StartDay int                 `json:"start_day"`
	Stats    score.MemberStats   `json:"stats"`
	Calendar []score.CalendarDay `json:"calendar"`
}

func (s *Service) MemberDashboard(ctx context.Context, memberID string, month model.Month) (*MemberDashboard, error) {
	logs, err := s.store.ListWakeupLogs(ctx, memberID, month)
	if err != nil {
		return nil, err
	}
	musts, err := s.store.ListMustRecords(ctx, memberID, month)
	if err != nil {
		return nil, err
	}
	return &MemberDashboard{
		Month:    month.String(),
		StartDay: month.StartWeekday(),
		Stats:    score.Member(month, logs, musts),
		Calendar: score.Calendar(month, logs, musts),
	}, nil
}

type AdminDashboard struct {
	Month   string                `json:"month"`
	Overall score.OverallStats    `json:"overall"`
	Ranking []score.MemberRanking `json:"ranking"`
}

func (s *Service) AdminDashboard(ctx context.Context, month model.Month) (*AdminDashboard, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.store.MonthlyStats(ctx, month)
	if err != nil {
		return nil, err
	}
	return &AdminDashboard{
		Month:   month.String(),
		Overall: score.Overall(members, logs),
		Ranking: score.Rank(members, logs),
	}, nil
}
