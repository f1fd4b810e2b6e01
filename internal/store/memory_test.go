package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakeup-punch-system/internal/model"
)

var may2024 = model.Month{Year: 2024, Month: time.May}

func TestMemoryMembers(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	a, err := s.AddMember(ctx, "Kim", "ABC123")
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	_, err = s.AddMember(ctx, "Lee", "XYZ789")
	require.NoError(t, err)

	_, err = s.AddMember(ctx, "Park", "ABC123")
	require.True(t, errors.Is(err, ErrDuplicate))

	list, err := s.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Lee", list[0].Name)

	got, err := s.GetMemberByCode(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = s.GetMemberByCode(ctx, "NOPE00")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = s.GetMember(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", got.MemberCode)

	got, err = s.GetMember(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryEmptyListsAreNotNil(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	logs, err := s.ListWakeupLogs(ctx, "m1", may2024)
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)

	logs, err = s.MonthlyStats(ctx, may2024)
	require.NoError(t, err)
	assert.NotNil(t, logs)

	musts, err := s.ListMustRecords(ctx, "m1", may2024)
	require.NoError(t, err)
	assert.NotNil(t, musts)
	assert.Empty(t, musts)
}

func TestMemoryDeleteMemberCascades(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	a, _ := s.AddMember(ctx, "Kim", "ABC123")
	b, _ := s.AddMember(ctx, "Lee", "XYZ789")

	_, _ = s.UpsertWakeupEvent(ctx, a.ID, "2024-05-01", model.KindWakeup, time.Now())
	_, _ = s.UpsertWakeupEvent(ctx, b.ID, "2024-05-01", model.KindWakeup, time.Now())
	_, _ = s.SaveMustRecord(ctx, a.ID, "2024-05-01", "read")

	require.NoError(t, s.DeleteMember(ctx, a.ID))
	require.NoError(t, s.DeleteMember(ctx, "missing"))

	assert.Equal(t, 1, s.WakeupLogCount())
	assert.Equal(t, 0, s.MustRecordCount())
	list, _ := s.ListMembers(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestMemoryUpsertWakeupEvent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	at := time.Date(2024, 5, 1, 4, 30, 0, 0, time.UTC)

	log, err := s.UpsertWakeupEvent(ctx, "m1", "2024-05-01", model.KindWakeup, at)
	require.NoError(t, err)
	assert.True(t, model.IsSuccess(log.WakeupStatus))
	assert.Nil(t, log.FrogStatus)

	log, err = s.UpsertWakeupEvent(ctx, "m1", "2024-05-01", model.KindFrog, at.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, model.IsSuccess(log.WakeupStatus))
	assert.True(t, model.IsSuccess(log.FrogStatus))
	assert.Equal(t, at, *log.WakeupTime)
	assert.Equal(t, 1, s.WakeupLogCount())
}

func TestMemoryUpsertWakeupEventConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := model.KindWakeup
			if i%2 == 0 {
				kind = model.KindFrog
			}
			_, err := s.UpsertWakeupEvent(ctx, "m1", "2024-05-01", kind, time.Now())
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, s.WakeupLogCount())
	log, err := s.GetWakeupLog(ctx, "m1", "2024-05-01")
	require.NoError(t, err)
	assert.True(t, model.IsSuccess(log.WakeupStatus))
	assert.True(t, model.IsSuccess(log.FrogStatus))
}

func TestMemorySetWakeupStatus(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	_, _ = s.UpsertWakeupEvent(ctx, "m1", "2024-05-01", model.KindWakeup, time.Now())

	log, err := s.SetWakeupStatus(ctx, "m1", "2024-05-01", model.StatusFailed, model.StatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, *log.WakeupStatus)
	assert.Equal(t, model.StatusSuccess, *log.FrogStatus)
	assert.NotNil(t, log.WakeupTime)
}

func TestMemoryListWakeupLogsByMonth(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	for _, d := range []string{"2024-05-03", "2024-04-30", "2024-05-01", "2024-06-01"} {
		_, _ = s.UpsertWakeupEvent(ctx, "m1", d, model.KindWakeup, time.Now())
	}
	_, _ = s.UpsertWakeupEvent(ctx, "m2", "2024-05-02", model.KindWakeup, time.Now())

	logs, err := s.ListWakeupLogs(ctx, "m1", may2024)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2024-05-01", logs[0].Date)
	assert.Equal(t, "2024-05-03", logs[1].Date)

	all, err := s.MonthlyStats(ctx, may2024)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryMustRecordOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	first, err := s.SaveMustRecord(ctx, "m1", "2024-05-01", "read")
	require.NoError(t, err)
	second, err := s.SaveMustRecord(ctx, "m1", "2024-05-01", "run")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, s.MustRecordCount())
	got, _ := s.GetMustRecord(ctx, "m1", "2024-05-01")
	assert.Equal(t, "run", got.Content)

	list, err := s.ListMustRecords(ctx, "m1", may2024)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.DeleteMustRecord(ctx, first.ID))
	got, _ = s.GetMustRecord(ctx, "m1", "2024-05-01")
	assert.Nil(t, got)
}

func TestMemoryLoginCodes(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, err := s.CreateMobileLoginCode(ctx, "ABC123", "Q1W2E3", now.Add(10*time.Minute))
	require.NoError(t, err)
	_, err = s.CreateMobileLoginCode(ctx, "ABC123", "OLD000", now.Add(-time.Minute))
	require.NoError(t, err)

	c, err := s.FindMobileLoginCode(ctx, "ABC123", "Q1W2E3", now)
	require.NoError(t, err)
	require.NotNil(t, c)

	// 过期前可重复使用
	c, _ = s.FindMobileLoginCode(ctx, "ABC123", "Q1W2E3", now.Add(5*time.Minute))
	assert.NotNil(t, c)

	c, _ = s.FindMobileLoginCode(ctx, "ABC123", "Q1W2E3", now.Add(11*time.Minute))
	assert.Nil(t, c)
	c, _ = s.FindMobileLoginCode(ctx, "XYZ789", "Q1W2E3", now)
	assert.Nil(t, c)

	n, err := s.PurgeExpiredLoginCodes(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUnconfigured(t *testing.T) {
	ctx := context.Background()
	var s Store = Unconfigured{}

	members, err := s.ListMembers(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	logs, err := s.MonthlyStats(ctx, may2024)
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, err = s.AddMember(ctx, "Kim", "ABC123")
	assert.True(t, errors.Is(err, ErrNotConfigured))
	_, err = s.UpsertWakeupEvent(ctx, "m1", "2024-05-01", model.KindWakeup, time.Now())
	assert.True(t, errors.Is(err, ErrNotConfigured))
	_, err = s.SaveMustRecord(ctx, "m1", "2024-05-01", "x")
	assert.True(t, errors.Is(err, ErrNotConfigured))
	_, err = s.GetMember(ctx, "m1")
	assert.True(t, errors.Is(err, ErrNotConfigured))

	c, err := s.FindMobileLoginCode(ctx, "ABC123", "Q1W2E3", time.Now())
	require.NoError(t, err)
	assert.Nil(t, c)
}
