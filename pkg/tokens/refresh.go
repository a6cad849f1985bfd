package tokens

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RefreshStore keeps opaque refresh tokens. Consume deletes the token so each
// one can be used once.
type RefreshStore interface {
	Create(ctx context.Context, adminID uint, ttl time.Duration) (string, error)
	Consume(ctx context.Context, token string) (uint, error)
	Revoke(ctx context.Context, token string) error
}

const refreshKeyPrefix = "refresh:"

// RedisStore keeps refresh tokens in Redis with a TTL.
type RedisStore struct {
	client *redis.Client
}

var _ RefreshStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, adminID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, refreshKeyPrefix+token, adminID, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Consume(ctx context.Context, token string) (uint, error) {
	val, err := s.client.GetDel(ctx, refreshKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrInvalidToken
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshKeyPrefix+token).Err()
}

type memoryEntry struct {
	adminID uint
	expires time.Time
}

// MemoryStore is the single process fallback used when REDIS_URL is unset.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ RefreshStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}, now: time.Now}
}

func (s *MemoryStore) Create(_ context.Context, adminID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gcLocked()
	s.entries[token] = memoryEntry{adminID: adminID, expires: s.now().Add(ttl)}
	return token, nil
}

func (s *MemoryStore) Consume(_ context.Context, token string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	delete(s.entries, token)
	if !ok || !s.now().Before(entry.expires) {
		return 0, ErrInvalidToken
	}
	return entry.adminID, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) gcLocked() {
	now := s.now()
	for token, entry := range s.entries {
		if !now.Before(entry.expires) {
			delete(s.entries, token)
		}
	}
}
