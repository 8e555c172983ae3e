package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"cinema_admin/constants"

	"github.com/redis/go-redis/v9"
)

// TokenStore giữ access token theo phiên đăng nhập của từng trình duyệt.
// Chuỗi rỗng nghĩa là phiên không tồn tại hoặc đã đăng xuất.
type TokenStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string) error
	Delete(ctx context.Context, sessionID string) error
}

type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]string)}
}

func (s *MemoryTokenStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[sessionID], nil
}

func (s *MemoryTokenStore) Set(_ context.Context, sessionID, token string) error {
	s.mu.Lock()
	s.tokens[sessionID] = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryTokenStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.tokens, sessionID)
	s.mu.Unlock()
	return nil
}

// RedisTokenStore lưu mỗi phiên ở key "<prefix>:<sessionId>", hết hạn sau ttl (0 là không hết hạn)
type RedisTokenStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, prefix string, ttl time.Duration) *RedisTokenStore {
	if prefix == "" {
		prefix = constants.TOKEN_KEY
	}
	return &RedisTokenStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisTokenStore) key(sessionID string) string {
	return s.prefix + ":" + sessionID
}

func (s *RedisTokenStore) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (s *RedisTokenStore) Set(ctx context.Context, sessionID, token string) error {
	return s.client.Set(ctx, s.key(sessionID), token, s.ttl).Err()
}

func (s *RedisTokenStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}
