package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model 所有表共用的字段，id 使用 uuid 字符串，与 Supabase 表结构保持一致
type Model struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Model) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
