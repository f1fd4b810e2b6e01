package store

import (
	"context"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wakeup-punch-system/internal/model"
)

const mysqlDuplicateEntry = 1062

// MySQL 基于 gorm 的实现
type MySQL struct {
	db *gorm.DB
}

func NewMySQL(db *gorm.DB) *MySQL {
	return &MySQL{db: db}
}

func (s *MySQL) fail(op string, err error) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &me) && me.Number == mysqlDuplicateEntry) {
		return duplicate(op, err)
	}
	return wrap(op, err)
}

// first 把 ErrRecordNotFound 转成 nil, nil
func first[T any](db *gorm.DB, op string) (*T, error) {
	var out T
	err := db.First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(op, err)
	}
	return &out, nil
}

func onMemberDate(columns ...string) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}
}

func (s *MySQL) ListMembers(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, wrap("ListMembers", err)
	}
	return members, nil
}

func (s *MySQL) GetMember(ctx context.Context, id string) (*model.Member, error) {
	return first[model.Member](s.db.WithContext(ctx).Where("id = ?", id), "GetMember")
}

func (s *MySQL) GetMemberByCode(ctx context.Context, code string) (*model.Member, error) {
	return first[model.Member](s.db.WithContext(ctx).Where("member_code = ?", code), "GetMemberByCode")
}

func (s *MySQL) AddMember(ctx context.Context, name, code string) (*model.Member, error) {
	member := &model.Member{Name: name, MemberCode: code}
	if err := s.db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, s.fail("AddMember", err)
	}
	return member, nil
}

func (s *MySQL) DeleteMember(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", id).Delete(&model.WakeupLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&model.MustRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Member{}).Error
	})
	return s.fail("DeleteMember", err)
}

func (s *MySQL) UpsertWakeupEvent(ctx context.Context, memberID, date string, kind model.EventKind, at time.Time) (*model.WakeupLog, error) {
	log := &model.WakeupLog{MemberID: memberID, Date: date}
	log.Apply(kind, at)
	status, atColumn := kind.Columns()
	db := s.db.WithContext(ctx)
	if err := db.Clauses(onMemberDate(status, atColumn)).Create(log).Error; err != nil {
		return nil, s.fail("UpsertWakeupEvent", err)
	}
	return s.GetWakeupLog(ctx, memberID, date)
}

func (s *MySQL) SetWakeupStatus(ctx context.Context, memberID, date string, wakeup, frog model.Status) (*model.WakeupLog, error) {
	log := &model.WakeupLog{
		MemberID:     memberID,
		Date:         date,
		WakeupStatus: model.StatusPtr(wakeup),
		FrogStatus:   model.StatusPtr(frog),
	}
	db := s.db.WithContext(ctx)
	if err := db.Clauses(onMemberDate("wakeup_status", "frog_status")).Create(log).Error; err != nil {
		return nil, s.fail("SetWakeupStatus", err)
	}
	return s.GetWakeupLog(ctx, memberID, date)
}

func (s *MySQL) GetWakeupLog(ctx context.Context, memberID, date string) (*model.WakeupLog, error) {
	return first[model.WakeupLog](s.db.WithContext(ctx).Where("member_id = ? AND date = ?", memberID, date), "GetWakeupLog")
}

func (s *MySQL) ListWakeupLogs(ctx context.Context, memberID string, month model.Month) ([]model.WakeupLog, error) {
	from, to := month.Range()
	var logs []model.WakeupLog
	err := s.db.WithContext(ctx).
		Where("member_id = ? AND date >= ? AND date < ?", memberID, from, to).
		Order("date").
		Find(&logs).Error
	if err != nil {
		return nil, wrap("ListWakeupLogs", err)
	}
	return logs, nil
}

func (s *MySQL) MonthlyStats(ctx context.Context, month model.Month) ([]model.WakeupLog, error) {
	from, to := month.Range()
	var logs []model.WakeupLog
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date, created_at").
		Find(&logs).Error
	if err != nil {
		return nil, wrap("MonthlyStats", err)
	}
	return logs, nil
}

func (s *MySQL) GetMustRecord(ctx context.Context, memberID, date string) (*model.MustRecord, error) {
	return first[model.MustRecord](s.db.WithContext(ctx).Where("member_id = ? AND date = ?", memberID, date), "GetMustRecord")
}

func (s *MySQL) SaveMustRecord(ctx context.Context, memberID, date, content string) (*model.MustRecord, error) {
	record := &model.MustRecord{MemberID: memberID, Date: date, Content: content}
	if err := s.db.WithContext(ctx).Clauses(onMemberDate("content")).Create(record).Error; err != nil {
		return nil, s.fail("SaveMustRecord", err)
	}
	return s.GetMustRecord(ctx, memberID, date)
}

func (s *MySQL) ListMustRecords(ctx context.Context, memberID string, month model.Month) ([]model.MustRecord, error) {
	from, to := month.Range()
	var records []model.MustRecord
	err := s.db.WithContext(ctx).
		Where("member_id = ? AND date >= ? AND date < ?", memberID, from, to).
		Order("date").
		Find(&records).Error
	if err != nil {
		return nil, wrap("ListMustRecords", err)
	}
	return records, nil
}

func (s *MySQL) DeleteMustRecord(ctx context.Context, id string) error {
	return wrap("DeleteMustRecord", s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MustRecord{}).Error)
}

func (s *MySQL) CreateMobileLoginCode(ctx context.Context, memberCode, code string, expiresAt time.Time) (*model.MobileLoginCode, error) {
	c := &model.MobileLoginCode{MemberCode: memberCode, Code: code, ExpiresAt: expiresAt}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, s.fail("CreateMobileLoginCode", err)
	}
	return c, nil
}

func (s *MySQL) FindMobileLoginCode(ctx context.Context, memberCode, code string, now time.Time) (*model.MobileLoginCode, error) {
	db := s.db.WithContext(ctx).
		Where("member_code = ? AND code = ? AND expires_at >= ?", memberCode, code, now)
	return first[model.MobileLoginCode](db, "FindMobileLoginCode")
}

func (s *MySQL) PurgeExpiredLoginCodes(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.MobileLoginCode{})
	if res.Error != nil {
		return 0, wrap("PurgeExpiredLoginCodes", res.Error)
	}
	return res.RowsAffected, nil
}
