package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlocklist records revoked token ids so logout actually invalidates a
// session for the rest of its lifetime.
type TokenBlocklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MemoryBlocklist is the in-process fallback used when no redis is
// configured. Entries carry the token expiry so the map does not grow past
// the set of live tokens.
type MemoryBlocklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryBlocklist() *MemoryBlocklist {
	return &MemoryBlocklist{revoked: make(map[string]time.Time)}
}

func (b *MemoryBlocklist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (b *MemoryBlocklist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	expiry, ok := b.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(b.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

// RedisBlocklist shares revocations through redis with a TTL matching the
// token lifetime.
type RedisBlocklist struct {
	client *redis.Client
}

func NewRedisBlocklist(addr, password string) *RedisBlocklist {
	return &RedisBlocklist{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (b *RedisBlocklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return b.client.Set(ctx, blocklistKey(tokenID), "revoked", ttl).Err()
}

func (b *RedisBlocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := b.client.Exists(ctx, blocklistKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func blocklistKey(tokenID string) string {
	return "token-blocklist:" + tokenID
}
