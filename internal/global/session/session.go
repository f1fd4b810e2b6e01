// Package session 登录会话：令牌里携带的身份以及登出后的吊销列表
package session

import (
	"context"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Session 管理员会话的 MemberID、MemberCode 为空
type Session struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"member_id,omitempty"`
	Name       string    `json:"name"`
	MemberCode string    `json:"member_code,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (s *Session) SentryUser() sentry.User {
	return sentry.User{
		ID:       s.MemberID,
		Username: s.Name,
		Data:     map[string]string{"member_code": s.MemberCode},
	}
}

// Revoker 登出后到令牌过期前，令牌 id 一直处于吊销状态
type Revoker interface {
	Revoke(ctx context.Context, id string, until time.Time) error
	Revoked(ctx context.Context, id string) (bool, error)
}

const redisKeyPrefix = "wakeup:session:revoked:"

type RedisRevoker struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRevoker(client *redis.Client) *RedisRevoker {
	return &RedisRevoker{client: client, now: time.Now}
}

func (r *RedisRevoker) Revoke(ctx context.Context, id string, until time.Time) error {
	ttl := until.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return errors.WithStack(r.client.Set(ctx, redisKeyPrefix+id, 1, ttl).Err())
}

func (r *RedisRevoker) Revoked(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return false, errors.WithStack(err)
	}
	return n > 0, nil
}

// MemoryRevoker 没有配置 Redis 时使用，只在单实例下有效
type MemoryRevoker struct {
	mu      sync.Mutex
	now     func() time.Time
	revoked map[string]time.Time
}

func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{now: time.Now, revoked: make(map[string]time.Time)}
}

func (r *MemoryRevoker) Revoke(_ context.Context, id string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for k, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, k)
		}
	}
	if until.After(now) {
		r.revoked[id] = until
	}
	return nil
}

func (r *MemoryRevoker) Revoked(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.revoked[id]
	return ok && exp.After(r.now()), nil
}
