package model

import "time"

// MobileLoginCode 手机端登录用的一次性短码，过期前可重复使用
type MobileLoginCode struct {
	Model
	MemberCode string    `gorm:"type:varchar(20);not null;index:idx_code_member" json:"member_code"`
	Code       string    `gorm:"type:varchar(12);not null;index:idx_code_member" json:"code"`
	ExpiresAt  time.Time `gorm:"not null;index" json:"expires_at"`
}

func (MobileLoginCode) TableName() string {
	return "mobile_login_codes"
}

func (c *MobileLoginCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
