package store

import (
	"context"
	"time"

	"wakeup-punch-system/internal/model"
)

// Unconfigured 后端连接信息缺失时使用：读返回空结果，写返回 ErrNotConfigured
type Unconfigured struct{}

func (Unconfigured) ListMembers(context.Context) ([]model.Member, error) {
	return []model.Member{}, nil
}

// GetMember 只在写入前确认成员，按写操作处理
func (Unconfigured) GetMember(context.Context, string) (*model.Member, error) {
	return nil, wrap("GetMember", ErrNotConfigured)
}

func (Unconfigured) GetMemberByCode(context.Context, string) (*model.Member, error) {
	return nil, nil
}

func (Unconfigured) AddMember(context.Context, string, string) (*model.Member, error) {
	return nil, wrap("AddMember", ErrNotConfigured)
}

func (Unconfigured) DeleteMember(context.Context, string) error {
	return wrap("DeleteMember", ErrNotConfigured)
}

func (Unconfigured) UpsertWakeupEvent(context.Context, string, string, model.EventKind, time.Time) (*model.WakeupLog, error) {
	return nil, wrap("UpsertWakeupEvent", ErrNotConfigured)
}

func (Unconfigured) SetWakeupStatus(context.Context, string, string, model.Status, model.Status) (*model.WakeupLog, error) {
	return nil, wrap("SetWakeupStatus", ErrNotConfigured)
}

func (Unconfigured) GetWakeupLog(context.Context, string, string) (*model.WakeupLog, error) {
	return nil, nil
}

func (Unconfigured) ListWakeupLogs(context.Context, string, model.Month) ([]model.WakeupLog, error) {
	return []model.WakeupLog{}, nil
}

func (Unconfigured) MonthlyStats(context.Context, model.Month) ([]model.WakeupLog, error) {
	return []model.WakeupLog{}, nil
}

func (Unconfigured) GetMustRecord(context.Context, string, string) (*model.MustRecord, error) {
	return nil, nil
}

func (Unconfigured) SaveMustRecord(context.Context, string, string, string) (*model.MustRecord, error) {
	return nil, wrap("SaveMustRecord", ErrNotConfigured)
}

func (Unconfigured) ListMustRecords(context.Context, string, model.Month) ([]model.MustRecord, error) {
	return []model.MustRecord{}, nil
}

func (Unconfigured) DeleteMustRecord(context.Context, string) error {
	return wrap("DeleteMustRecord", ErrNotConfigured)
}

func (Unconfigured) CreateMobileLoginCode(context.Context, string, string, time.Time) (*model.MobileLoginCode, error) {
	return nil, wrap("CreateMobileLoginCode", ErrNotConfigured)
}

// FindMobileLoginCode 未配置时任何登录码都校验失败
func (Unconfigured) FindMobileLoginCode(context.Context, string, string, time.Time) (*model.MobileLoginCode, error) {
	return nil, nil
}

func (Unconfigured) PurgeExpiredLoginCodes(context.Context, time.Time) (int64, error) {
	return 0, nil
}
