package model

// MustRecord 每人每天一条，重复保存覆盖当天内容
type MustRecord struct {
	Model
	MemberID string `gorm:"type:char(36);not null;uniqueIndex:idx_must_member_date" json:"member_id"`
	Date     string `gorm:"type:char(10);not null;uniqueIndex:idx_must_member_date" json:"date"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (MustRecord) TableName() string {
	return "must_records"
}
