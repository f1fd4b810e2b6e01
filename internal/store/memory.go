package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"wakeup-punch-system/internal/model"
)

type dayKey struct {
	memberID string
	date     string
}

// Memory 进程内实现，开发环境和测试使用
// 所有写操作在同一把锁下完成，(member_id, date) 天然唯一
type Memory struct {
	mu      sync.RWMutex
	now     func() time.Time
	members []model.Member
	wakeups map[dayKey]*model.WakeupLog
	musts   map[dayKey]*model.MustRecord
	codes   []model.MobileLoginCode
}

func NewMemory() *Memory {
	return &Memory{
		now:     time.Now,
		wakeups: make(map[dayKey]*model.WakeupLog),
		musts:   make(map[dayKey]*model.MustRecord),
	}
}

func (m *Memory) newModel() model.Model {
	return model.Model{ID: uuid.NewString(), CreatedAt: m.now()}
}

func (m *Memory) ListMembers(context.Context) ([]model.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Member, len(m.members))
	copy(out, m.members)
	// 倒序；创建时间相同时后加入的在前
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) GetMember(_ context.Context, id string) (*model.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.members {
		if m.members[i].ID == id {
			member := m.members[i]
			return &member, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetMemberByCode(_ context.Context, code string) (*model.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.members {
		if m.members[i].MemberCode == code {
			member := m.members[i]
			return &member, nil
		}
	}
	return nil, nil
}

func (m *Memory) AddMember(_ context.Context, name, code string) (*model.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.members {
		if existing.MemberCode == code {
			return nil, duplicate("AddMember", errMemoryUnique("members.member_code"))
		}
	}
	member := model.Member{Model: m.newModel(), Name: name, MemberCode: code}
	m.members = append(m.members, member)
	return &member, nil
}

func (m *Memory) DeleteMember(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.members[:0]
	for _, member := range m.members {
		if member.ID != id {
			kept = append(kept, member)
		}
	}
	m.members = kept
	for k := range m.wakeups {
		if k.memberID == id {
			delete(m.wakeups, k)
		}
	}
	for k := range m.musts {
		if k.memberID == id {
			delete(m.musts, k)
		}
	}
	return nil
}

func (m *Memory) UpsertWakeupEvent(_ context.Context, memberID, date string, kind model.EventKind, at time.Time) (*model.WakeupLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dayKey{memberID, date}
	log, ok := m.wakeups[key]
	if !ok {
		log = &model.WakeupLog{Model: m.newModel(), MemberID: memberID, Date: date}
		m.wakeups[key] = log
	}
	log.Apply(kind, at)
	out := *log
	return &out, nil
}

func (m *Memory) SetWakeupStatus(_ context.Context, memberID, date string, wakeup, frog model.Status) (*model.WakeupLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dayKey{memberID, date}
	log, ok := m.wakeups[key]
	if !ok {
		log = &model.WakeupLog{Model: m.newModel(), MemberID: memberID, Date: date}
		m.wakeups[key] = log
	}
	log.WakeupStatus = model.StatusPtr(wakeup)
	log.FrogStatus = model.StatusPtr(frog)
	out := *log
	return &out, nil
}

func (m *Memory) GetWakeupLog(_ context.Context, memberID, date string) (*model.WakeupLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if log, ok := m.wakeups[dayKey{memberID, date}]; ok {
		out := *log
		return &out, nil
	}
	return nil, nil
}

func (m *Memory) ListWakeupLogs(_ context.Context, memberID string, month model.Month) ([]model.WakeupLog, error) {
	return m.wakeupLogs(func(l *model.WakeupLog) bool {
		return l.MemberID == memberID && month.Contains(l.Date)
	}), nil
}

func (m *Memory) MonthlyStats(_ context.Context, month model.Month) ([]model.WakeupLog, error) {
	return m.wakeupLogs(func(l *model.WakeupLog) bool {
		return month.Contains(l.Date)
	}), nil
}

func (m *Memory) wakeupLogs(keep func(*model.WakeupLog) bool) []model.WakeupLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.WakeupLog, 0)
	for _, l := range m.wakeups {
		if keep(l) {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// WakeupLogCount 测试用：当前记录总数
func (m *Memory) WakeupLogCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.wakeups)
}

func (m *Memory) GetMustRecord(_ context.Context, memberID, date string) (*model.MustRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.musts[dayKey{memberID, date}]; ok {
		out := *r
		return &out, nil
	}
	return nil, nil
}

func (m *Memory) SaveMustRecord(_ context.Context, memberID, date, content string) (*model.MustRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dayKey{memberID, date}
	r, ok := m.musts[key]
	if !ok {
		r = &model.MustRecord{Model: m.newModel(), MemberID: memberID, Date: date}
		m.musts[key] = r
	}
	r.Content = content
	out := *r
	return &out, nil
}

func (m *Memory) ListMustRecords(_ context.Context, memberID string, month model.Month) ([]model.MustRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.MustRecord, 0)
	for _, r := range m.musts {
		if r.MemberID == memberID && month.Contains(r.Date) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// MustRecordCount 测试用：当前 MUST 记录总数
func (m *Memory) MustRecordCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.musts)
}

func (m *Memory) DeleteMustRecord(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, r := range m.musts {
		if r.ID == id {
			delete(m.musts, k)
		}
	}
	return nil
}

func (m *Memory) CreateMobileLoginCode(_ context.Context, memberCode, code string, expiresAt time.Time) (*model.MobileLoginCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := model.MobileLoginCode{Model: m.newModel(), MemberCode: memberCode, Code: code, ExpiresAt: expiresAt}
	m.codes = append(m.codes, c)
	return &c, nil
}

func (m *Memory) FindMobileLoginCode(_ context.Context, memberCode, code string, now time.Time) (*model.MobileLoginCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.codes {
		c := m.codes[i]
		if c.MemberCode == memberCode && c.Code == code && !c.Expired(now) {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *Memory) PurgeExpiredLoginCodes(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.codes[:0]
	var n int64
	for _, c := range m.codes {
		if c.ExpiresAt.Before(before) {
			n++
			continue
		}
		kept = append(kept, c)
	}
	m.codes = kept
	return n, nil
}

type errMemoryUnique string

func (e errMemoryUnique) Error() string {
	return "unique constraint violated: " + string(e)
}
