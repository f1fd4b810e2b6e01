package score

import "wakeup-punch-system/internal/model"

// CalendarDay Day 为 0 的是 1 号之前的占位格
type CalendarDay struct {
	Date         string        `json:"date"`
	Day          int           `json:"day"`
	WakeupStatus *model.Status `json:"wakeup_status"`
	FrogStatus   *model.Status `json:"frog_status"`
	MustRecord   bool          `json:"must_record"`
	Score        int           `json:"score"`
}

// Calendar 生成月历：先是 StartWeekday 个占位格，再是每天一格
func Calendar(month model.Month, logs []model.WakeupLog, musts []model.MustRecord) []CalendarDay {
	byDate := make(map[string]*model.WakeupLog, len(logs))
	for i := range logs {
		if _, ok := byDate[logs[i].Date]; !ok {
			byDate[logs[i].Date] = &logs[i]
		}
	}
	mustDates := make(map[string]bool, len(musts))
	for _, r := range musts {
		mustDates[r.Date] = true
	}

	start := month.StartWeekday()
	days := make([]CalendarDay, start, start+month.Days())
	for d := 1; d <= month.Days(); d++ {
		date := month.Date(d)
		day := CalendarDay{Date: date, Day: d, MustRecord: mustDates[date]}
		if log := byDate[date]; log != nil {
			day.WakeupStatus = log.WakeupStatus
			day.FrogStatus = log.FrogStatus
		}
		day.Score = DayScore(byDate[date], day.MustRecord)
		days = append(days, day)
	}
	return days
}
