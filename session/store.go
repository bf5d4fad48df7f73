package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound means the session id is unknown or expired.
var ErrNotFound = errors.New("session: not found")

type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps each session as a JSON string under session:<id>.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(id string) string { return "session:" + id }

func (rs *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	data, err := rs.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	s := New(id)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (rs *RedisStore) Save(ctx context.Context, s *Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := rs.client.Set(ctx, redisKey(s.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (rs *RedisStore) Delete(ctx context.Context, id string) error {
	return rs.client.Del(ctx, redisKey(id)).Err()
}

// MemoryStore keeps sessions in process. Used when no Redis is configured and
// in tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry), now: time.Now}
}

func (ms *MemoryStore) Load(ctx context.Context, id string) (*Session, error) {
	ms.mu.Lock()
	entry, ok := ms.sessions[id]
	if ok && !ms.now().Before(entry.expires) {
		delete(ms.sessions, id)
		ok = false
	}
	ms.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}

	s := New(id)
	if err := json.Unmarshal(entry.data, s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (ms *MemoryStore) Save(ctx context.Context, s *Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.sessions[s.ID] = memoryEntry{data: data, expires: ms.now().Add(ttl)}
	return nil
}

func (ms *MemoryStore) Delete(ctx context.Context, id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.sessions, id)
	return nil
}
