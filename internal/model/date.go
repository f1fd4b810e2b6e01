package model

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// FormatDate 按给定时区取日历日期
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("日期格式应为 YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// Month 形如 2024-05 的自然月
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("月份格式应为 YYYY-MM: %w", err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func MonthOf(t time.Time, loc *time.Location) Month {
	t = t.In(loc)
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	return m.first().Format(MonthLayout)
}

func (m Month) Days() int {
	return m.first().AddDate(0, 1, -1).Day()
}

// StartWeekday 1 号是星期几，0 = 周日
func (m Month) StartWeekday() int {
	return int(m.first().Weekday())
}

// Date 当月第 day 天的日期字符串
func (m Month) Date(day int) string {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// Range 半开区间 [from, to)，to 为下月 1 号
func (m Month) Range() (from, to string) {
	return m.first().Format(DateLayout), m.first().AddDate(0, 1, 0).Format(DateLayout)
}

func (m Month) Contains(date string) bool {
	from, to := m.Range()
	return date >= from && date < to
}
