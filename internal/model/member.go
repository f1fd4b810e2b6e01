package model

type Member struct {
	Model
	Name       string `gorm:"type:varchar(50);not null" json:"name"`
	MemberCode string `gorm:"type:varchar(20);uniqueIndex;not null" json:"member_code"`
}

func (Member) TableName() string {
	return "members"
}
