package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wakeup-punch-system/internal/global/supabase"
	"wakeup-punch-system/internal/model"
)

const onMemberDateConflict = "member_id,date"

// Supabase 通过 PostgREST 访问同名的四张表
// 合并写入时不带 id，由表的默认值生成，避免覆盖已有行的主键
type Supabase struct {
	client *supabase.Client
}

func NewSupabase(client *supabase.Client) *Supabase {
	return &Supabase{client: client}
}

func (s *Supabase) fail(op string, err error) error {
	if supabase.IsCode(err, supabase.CodeUniqueViolation) {
		return duplicate(op, err)
	}
	return wrap(op, err)
}

func (s *Supabase) ListMembers(ctx context.Context) ([]model.Member, error) {
	members := []model.Member{}
	q := supabase.NewQuery().Order("created_at.desc")
	if err := s.client.Select(ctx, "members", q, &members); err != nil {
		return nil, wrap("ListMembers", err)
	}
	return members, nil
}

func (s *Supabase) GetMember(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	found, err := s.client.SelectOne(ctx, "members", supabase.NewQuery().Eq("id", id), &member)
	if err != nil || !found {
		return nil, wrap("GetMember", err)
	}
	return &member, nil
}

func (s *Supabase) GetMemberByCode(ctx context.Context, code string) (*model.Member, error) {
	var member model.Member
	found, err := s.client.SelectOne(ctx, "members", supabase.NewQuery().Eq("member_code", code), &member)
	if err != nil || !found {
		return nil, wrap("GetMemberByCode", err)
	}
	return &member, nil
}

func (s *Supabase) AddMember(ctx context.Context, name, code string) (*model.Member, error) {
	body := map[string]any{"id": uuid.NewString(), "name": name, "member_code": code}
	var member model.Member
	if err := s.client.Insert(ctx, "members", body, &member); err != nil {
		return nil, s.fail("AddMember", err)
	}
	return &member, nil
}

// DeleteMember PostgREST 没有跨表事务，先删子表再删成员
func (s *Supabase) DeleteMember(ctx context.Context, id string) error {
	byMember := supabase.NewQuery().Eq("member_id", id)
	if _, err := s.client.Delete(ctx, "wakeup_logs", byMember); err != nil {
		return wrap("DeleteMember", err)
	}
	if _, err := s.client.Delete(ctx, "must_records", byMember); err != nil {
		return wrap("DeleteMember", err)
	}
	_, err := s.client.Delete(ctx, "members", supabase.NewQuery().Eq("id", id))
	return wrap("DeleteMember", err)
}

func (s *Supabase) upsertWakeupLog(ctx context.Context, op string, body map[string]any) (*model.WakeupLog, error) {
	var log model.WakeupLog
	if err := s.client.Upsert(ctx, "wakeup_logs", onMemberDateConflict, body, &log); err != nil {
		return nil, s.fail(op, err)
	}
	return &log, nil
}

func (s *Supabase) UpsertWakeupEvent(ctx context.Context, memberID, date string, kind model.EventKind, at time.Time) (*model.WakeupLog, error) {
	status, atColumn := kind.Columns()
	return s.upsertWakeupLog(ctx, "UpsertWakeupEvent", map[string]any{
		"member_id": memberID,
		"date":      date,
		status:      model.StatusSuccess,
		atColumn:    at.UTC(),
	})
}

func (s *Supabase) SetWakeupStatus(ctx context.Context, memberID, date string, wakeup, frog model.Status) (*model.WakeupLog, error) {
	return s.upsertWakeupLog(ctx, "SetWakeupStatus", map[string]any{
		"member_id":     memberID,
		"date":          date,
		"wakeup_status": wakeup,
		"frog_status":   frog,
	})
}

func (s *Supabase) GetWakeupLog(ctx context.Context, memberID, date string) (*model.WakeupLog, error) {
	var log model.WakeupLog
	q := supabase.NewQuery().Eq("member_id", memberID).Eq("date", date)
	found, err := s.client.SelectOne(ctx, "wakeup_logs", q, &log)
	if err != nil || !found {
		return nil, wrap("GetWakeupLog", err)
	}
	return &log, nil
}

func monthQuery(month model.Month) *supabase.Query {
	from, to := month.Range()
	return supabase.NewQuery().Gte("date", from).Lt("date", to)
}

func (s *Supabase) ListWakeupLogs(ctx context.Context, memberID string, month model.Month) ([]model.WakeupLog, error) {
	logs := []model.WakeupLog{}
	q := monthQuery(month).Eq("member_id", memberID).Order("date.asc")
	if err := s.client.Select(ctx, "wakeup_logs", q, &logs); err != nil {
		return nil, wrap("ListWakeupLogs", err)
	}
	return logs, nil
}

func (s *Supabase) MonthlyStats(ctx context.Context, month model.Month) ([]model.WakeupLog, error) {
	logs := []model.WakeupLog{}
	q := monthQuery(month).Order("date.asc,created_at.asc")
	if err := s.client.Select(ctx, "wakeup_logs", q, &logs); err != nil {
		return nil, wrap("MonthlyStats", err)
	}
	return logs, nil
}

func (s *Supabase) GetMustRecord(ctx context.Context, memberID, date string) (*model.MustRecord, error) {
	var record model.MustRecord
	q := supabase.NewQuery().Eq("member_id", memberID).Eq("date", date)
	found, err := s.client.SelectOne(ctx, "must_records", q, &record)
	if err != nil || !found {
		return nil, wrap("GetMustRecord", err)
	}
	return &record, nil
}

func (s *Supabase) SaveMustRecord(ctx context.Context, memberID, date, content string) (*model.MustRecord, error) {
	body := map[string]any{"member_id": memberID, "date": date, "content": content}
	var record model.MustRecord
	if err := s.client.Upsert(ctx, "must_records", onMemberDateConflict, body, &record); err != nil {
		return nil, s.fail("SaveMustRecord", err)
	}
	return &record, nil
}

func (s *Supabase) ListMustRecords(ctx context.Context, memberID string, month model.Month) ([]model.MustRecord, error) {
	records := []model.MustRecord{}
	q := monthQuery(month).Eq("member_id", memberID).Order("date.asc")
	if err := s.client.Select(ctx, "must_records", q, &records); err != nil {
		return nil, wrap("ListMustRecords", err)
	}
	return records, nil
}

func (s *Supabase) DeleteMustRecord(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, "must_records", supabase.NewQuery().Eq("id", id))
	return wrap("DeleteMustRecord", err)
}

func (s *Supabase) CreateMobileLoginCode(ctx context.Context, memberCode, code string, expiresAt time.Time) (*model.MobileLoginCode, error) {
	body := map[string]any{
		"id":          uuid.NewString(),
		"member_code": memberCode,
		"code":        code,
		"expires_at":  expiresAt.UTC(),
	}
	var c model.MobileLoginCode
	if err := s.client.Insert(ctx, "mobile_login_codes", body, &c); err != nil {
		return nil, s.fail("CreateMobileLoginCode", err)
	}
	return &c, nil
}

func (s *Supabase) FindMobileLoginCode(ctx context.Context, memberCode, code string, now time.Time) (*model.MobileLoginCode, error) {
	var found []model.MobileLoginCode
	q := supabase.NewQuery().
		Eq("member_code", memberCode).
		Eq("code", code).
		Gte("expires_at", now.UTC().Format(time.RFC3339)).
		Order("expires_at.desc")
	if err := s.client.Select(ctx, "mobile_login_codes", q, &found); err != nil {
		return nil, wrap("FindMobileLoginCode", err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (s *Supabase) PurgeExpiredLoginCodes(ctx context.Context, before time.Time) (int64, error) {
	q := supabase.NewQuery().Lt("expires_at", before.UTC().Format(time.RFC3339))
	n, err := s.client.Delete(ctx, "mobile_login_codes", q)
	if err != nil {
		return 0, wrap("PurgeExpiredLoginCodes", err)
	}
	return n, nil
}
