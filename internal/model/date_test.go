package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	require.NoError(t, err)
	require.Equal(t, "2024-02", m.String())
	require.Equal(t, 29, m.Days())
	require.Equal(t, 4, m.StartWeekday()) // 2024-02-01 是周四

	from, to := m.Range()
	require.Equal(t, "2024-02-01", from)
	require.Equal(t, "2024-03-01", to)
	require.True(t, m.Contains("2024-02-29"))
	require.False(t, m.Contains("2024-03-01"))
	require.False(t, m.Contains("2024-01-31"))
	require.Equal(t, "2024-02-09", m.Date(9))

	_, err = ParseMonth("2024-13")
	require.Error(t, err)
	_, err = ParseMonth("May")
	require.Error(t, err)
}

func TestMonthRangeDecember(t *testing.T) {
	m := Month{Year: 2025, Month: time.December}
	from, to := m.Range()
	require.Equal(t, "2025-12-01", from)
	require.Equal(t, "2026-01-01", to)
	require.Equal(t, 31, m.Days())
}

func TestFormatDateUsesZone(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	// UTC 前一天 20 点在首尔已是第二天
	at := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	require.Equal(t, "2024-05-02", FormatDate(at, seoul))
	require.Equal(t, Month{Year: 2024, Month: time.May}, MonthOf(at, seoul))
}

func TestWakeupLogApplyKeepsOtherKind(t *testing.T) {
	wake := time.Date(2024, 5, 1, 4, 30, 0, 0, time.UTC)
	frog := wake.Add(time.Hour)

	var l WakeupLog
	l.Apply(KindWakeup, wake)
	l.Apply(KindFrog, frog)

	require.True(t, IsSuccess(l.WakeupStatus))
	require.True(t, IsSuccess(l.FrogStatus))
	require.Equal(t, wake, *l.WakeupTime)
	require.Equal(t, frog, *l.FrogTime)
	require.False(t, IsSuccess(nil))
	require.False(t, IsSuccess(StatusPtr(StatusFailed)))
}
