// Package score 把从存储层取回的行汇总成日分、月度统计与排名，全部是纯计算
package score

import (
	"math"

	"wakeup-punch-system/internal/model"
)

// MaxDayScore 起床、青蛙、MUST 各 1 分
const MaxDayScore = 3

// DayScore 一天的分数，log 可以为 nil
func DayScore(log *model.WakeupLog, hasMust bool) int {
	s := 0
	if log != nil {
		if model.IsSuccess(log.WakeupStatus) {
			s++
		}
		if model.IsSuccess(log.FrogStatus) {
			s++
		}
	}
	if hasMust {
		s++
	}
	return s
}

// eventScore 管理端排名只计起床和青蛙
func eventScore(log *model.WakeupLog) int {
	return DayScore(log, false)
}

// WakeupRate 百分比，四舍五入到整数
func WakeupRate(success, days int) int {
	if days <= 0 {
		return 0
	}
	return int(math.Round(float64(success) / float64(days) * 100))
}

type MemberStats struct {
	WakeupSuccess int `json:"wakeup_success"`
	WakeupRate    int `json:"wakeup_rate"`
	TotalScore    int `json:"total_score"`
}

// Member 单个成员某月的统计，logs 与 musts 应只包含该成员的记录
func Member(month model.Month, logs []model.WakeupLog, musts []model.MustRecord) MemberStats {
	var st MemberStats
	for _, day := range Calendar(month, logs, musts) {
		if day.Day == 0 {
			continue
		}
		if model.IsSuccess(day.WakeupStatus) {
			st.WakeupSuccess++
		}
		st.TotalScore += day.Score
	}
	st.WakeupRate = WakeupRate(st.WakeupSuccess, month.Days())
	return st
}

type OverallStats struct {
	TotalMembers       int `json:"total_members"`
	TotalWakeupSuccess int `json:"total_wakeup_success"`
	OverallWakeupRate  int `json:"overall_wakeup_rate"`
	TotalScore         int `json:"total_score"`
}

// Overall 管理端汇总卡片，起床率以记录行数为分母
func Overall(members []model.Member, logs []model.WakeupLog) OverallStats {
	st := OverallStats{TotalMembers: len(members)}
	for i := range logs {
		if model.IsSuccess(logs[i].WakeupStatus) {
			st.TotalWakeupSuccess++
		}
		st.TotalScore += eventScore(&logs[i])
	}
	st.OverallWakeupRate = WakeupRate(st.TotalWakeupSuccess, len(logs))
	return st
}
