// Package cache хранит отозванные access-токены до истечения их срока.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist хранит отозванные jti до истечения токена.
type TokenBlacklist interface {
	// Revoke помечает jti отозванным на ttl.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Close() error
}

type redisBlacklist struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisBlacklist подключается к Redis и пингует его. Если prefix пустой,
// используется "news:revoked:".
func NewRedisBlacklist(ctx context.Context, opt *redis.Options, prefix string) (TokenBlacklist, error) {
	if prefix == "" {
		prefix = "news:revoked:"
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return NewRedisBlacklistFromClient(rdb, prefix), nil
}

func NewRedisBlacklistFromClient(rdb *redis.Client, prefix string) TokenBlacklist {
	return &redisBlacklist{rdb: rdb, prefix: prefix}
}

func (b *redisBlacklist) key(jti string) string { return b.prefix + jti }

func (b *redisBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.rdb.Set(ctx, b.key(jti), "1", ttl).Err()
}

func (b *redisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, b.key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *redisBlacklist) Close() error { return b.rdb.Close() }

// memoryBlacklist используется, когда Redis не настроен.
type memoryBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryBlacklist(now func() time.Time) TokenBlacklist {
	if now == nil {
		now = time.Now
	}
	return &memoryBlacklist{entries: make(map[string]time.Time), now: now}
}

func (b *memoryBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[jti] = b.now().Add(ttl)
	return nil
}

func (b *memoryBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.entries[jti]
	if !ok {
		return false, nil
	}
	if !b.now().Before(exp) {
		delete(b.entries, jti)
		return false, nil
	}
	return true, nil
}

func (b *memoryBlacklist) Close() error { return nil }
