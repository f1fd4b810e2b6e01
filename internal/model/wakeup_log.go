package model

import "time"

// Status 打卡状态，nil 表示当天还没有记录
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func (s Status) Valid() bool {
	return s == StatusSuccess || s == StatusFailed
}

// IsSuccess nil 安全
func IsSuccess(s *Status) bool {
	return s != nil && *s == StatusSuccess
}

func StatusPtr(s Status) *Status {
	return &s
}

// EventKind 一天内可记录的两类事件
type EventKind string

const (
	KindWakeup EventKind = "wakeup"
	KindFrog   EventKind = "frog"
)

func (k EventKind) Valid() bool {
	return k == KindWakeup || k == KindFrog
}

// Columns 事件对应的状态列与时间列
func (k EventKind) Columns() (status, at string) {
	if k == KindFrog {
		return "frog_status", "frog_time"
	}
	return "wakeup_status", "wakeup_time"
}

// WakeupLog (member_id, date) 唯一，同一天第二次事件只更新不新增
type WakeupLog struct {
	Model
	MemberID     string     `gorm:"type:char(36);not null;uniqueIndex:idx_wakeup_member_date" json:"member_id"`
	Date         string     `gorm:"type:char(10);not null;uniqueIndex:idx_wakeup_member_date;index" json:"date"`
	WakeupStatus *Status    `gorm:"type:varchar(16)" json:"wakeup_status"`
	FrogStatus   *Status    `gorm:"type:varchar(16)" json:"frog_status"`
	WakeupTime   *time.Time `json:"wakeup_time"`
	FrogTime     *time.Time `json:"frog_time"`
}

func (WakeupLog) TableName() string {
	return "wakeup_logs"
}

// Apply 把一次事件写到记录上，另一类事件的字段保持不变
func (l *WakeupLog) Apply(kind EventKind, at time.Time) {
	success := StatusSuccess
	if kind == KindFrog {
		l.FrogStatus = &success
		l.FrogTime = &at
		return
	}
	l.WakeupStatus = &success
	l.WakeupTime = &at
}
