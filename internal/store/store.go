// Package store 是记录访问层：把成员、打卡、MUST、手机登录码的读写映射到具体后端
// 目前有 mysql(gorm)、supabase(PostgREST) 与内存三种实现
package store

import (
	"context"
	"time"

	"wakeup-punch-system/internal/model"
)

type Store interface {
	// ListMembers 按创建时间倒序
	ListMembers(ctx context.Context) ([]model.Member, error)
	// GetMember 按 id 查询，不存在时返回 nil, nil
	GetMember(ctx context.Context, id string) (*model.Member, error)
	// GetMemberByCode 不存在时返回 nil, nil
	GetMemberByCode(ctx context.Context, code string) (*model.Member, error)
	AddMember(ctx context.Context, name, code string) (*model.Member, error)
	// DeleteMember 删除不存在的 id 不报错，成员的打卡与 MUST 一并删除
	DeleteMember(ctx context.Context, id string) error

	// UpsertWakeupEvent 按 (member_id, date) 单条写入：状态置 success 并记录时间，另一类事件字段不动
	UpsertWakeupEvent(ctx context.Context, memberID, date string, kind model.EventKind, at time.Time) (*model.WakeupLog, error)
	// SetWakeupStatus 管理端修正当天两个状态
	SetWakeupStatus(ctx context.Context, memberID, date string, wakeup, frog model.Status) (*model.WakeupLog, error)
	// GetWakeupLog 不存在时返回 nil, nil
	GetWakeupLog(ctx context.Context, memberID, date string) (*model.WakeupLog, error)
	// ListWakeupLogs 单个成员当月记录，按日期升序
	ListWakeupLogs(ctx context.Context, memberID string, month model.Month) ([]model.WakeupLog, error)
	// MonthlyStats 当月所有成员的记录
	MonthlyStats(ctx context.Context, month model.Month) ([]model.WakeupLog, error)

	// GetMustRecord 不存在时返回 nil, nil
	GetMustRecord(ctx context.Context, memberID, date string) (*model.MustRecord, error)
	// SaveMustRecord 按 (member_id, date) 覆盖写入
	SaveMustRecord(ctx context.Context, memberID, date, content string) (*model.MustRecord, error)
	ListMustRecords(ctx context.Context, memberID string, month model.Month) ([]model.MustRecord, error)
	DeleteMustRecord(ctx context.Context, id string) error

	CreateMobileLoginCode(ctx context.Context, memberCode, code string, expiresAt time.Time) (*model.MobileLoginCode, error)
	// FindMobileLoginCode 精确匹配且 expires_at >= now，找不到返回 nil, nil
	FindMobileLoginCode(ctx context.Context, memberCode, code string, now time.Time) (*model.MobileLoginCode, error)
	// PurgeExpiredLoginCodes 返回删除条数
	PurgeExpiredLoginCodes(ctx context.Context, before time.Time) (int64, error)
}
