// Package service 打卡业务规则：时间窗口、事件先后、成员码与手机登录码
// 所有时间判断都以服务端时钟和配置的时区为准
package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/model"
	"wakeup-punch-system/internal/store"
)

const (
	defaultStartHour    = 0
	defaultEndHour      = 5
	defaultLoginCodeTTL = 10 * time.Minute
)

// ErrMemberGone 令牌里的成员已被删除，旧令牌不能再写入任何记录
var ErrMemberGone = errors.New("service: member no longer exists")

// ValidationError 业务校验失败，不会产生任何写入
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func (e *ValidationError) ValidationReason() string {
	return e.Reason
}

func invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

type Service struct {
	store     store.Store
	now       func() time.Time
	loc       *time.Location
	startHour int
	endHour   int
	codeTTL   time.Duration
	newCode   func() (string, error)
	log       *slog.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithWindow 起床打卡允许的小时区间 [start, end)
func WithWindow(start, end int) Option {
	return func(s *Service) { s.startHour, s.endHour = start, end }
}

func WithLoginCodeTTL(ttl time.Duration) Option {
	return func(s *Service) { s.codeTTL = ttl }
}

func WithCodeGenerator(gen func() (string, error)) Option {
	return func(s *Service) { s.newCode = gen }
}

func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:     st,
		now:       time.Now,
		loc:       time.UTC,
		startHour: defaultStartHour,
		endHour:   defaultEndHour,
		codeTTL:   defaultLoginCodeTTL,
		newCode:   randomCode,
		log:       logger.New("Service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig 按 habit 配置构建，时区无效时返回错误
func NewFromConfig(st store.Store, c config.Habit) (*Service, error) {
	opts := []Option{WithWindow(c.WakeupStartHour, c.WakeupEndHour)}
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, errors.Wrapf(err, "无效的时区 %q", c.Timezone)
		}
		opts = append(opts, WithLocation(loc))
	}
	if c.WakeupEndHour <= c.WakeupStartHour {
		return nil, errors.Errorf("起床打卡时间窗口无效: [%d, %d)", c.WakeupStartHour, c.WakeupEndHour)
	}
	if c.LoginCodeTTLMinutes > 0 {
		opts = append(opts, WithLoginCodeTTL(time.Duration(c.LoginCodeTTLMinutes)*time.Minute))
	}
	return New(st, opts...), nil
}

// Today 服务端时区下的今天
func (s *Service) Today() string {
	return model.FormatDate(s.now(), s.loc)
}

func (s *Service) yesterday() string {
	return model.FormatDate(s.now().In(s.loc).AddDate(0, 0, -1), s.loc)
}

// ResolveMonth 空串表示当月
func (s *Service) ResolveMonth(raw string) (model.Month, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.MonthOf(s.now(), s.loc), nil
	}
	m, err := model.ParseMonth(raw)
	if err != nil {
		return model.Month{}, invalid("月份格式应为 YYYY-MM")
	}
	return m, nil
}

// InWakeupWindow 当前时刻是否允许起床打卡
func (s *Service) InWakeupWindow() bool {
	hour := s.now().In(s.loc).Hour()
	return hour >= s.startHour && hour < s.endHour
}
