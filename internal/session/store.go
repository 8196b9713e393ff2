// Package session tracks pending stream sessions between upload and
// playback. A session is claimed exactly once: Resolve hands it to one
// caller and removes it in the same step.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/framegeist/framegeist/internal/shared"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long an unclaimed upload stays resolvable.
const DefaultTTL = 10 * time.Minute

// Store holds pending stream sessions. Get peeks without consuming;
// Resolve consumes, so at most one caller ever receives a session.
type Store interface {
	Create(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Resolve(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{redis: redisClient, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, sess *Session) error {
	if sess.ID == "" {
		sess.ID = shared.ShortID("stream_", 12)
	}
	sess.CreatedAt = time.Now()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, sess.RedisKey(), data, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.redis.Get(ctx, "stream:"+id).Bytes()
	if err == redis.Nil {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Resolve claims the session. GETDEL makes the read and the removal a
// single atomic step, so a concurrent second caller gets ErrNotFound.
func (s *RedisStore) Resolve(ctx context.Context, id string) (*Session, error) {
	data, err := s.redis.GetDel(ctx, "stream:"+id).Bytes()
	if err == redis.Nil {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.redis.Del(ctx, "stream:"+id).Err()
}

// MemoryStore is the single-node fallback used when no redis address is
// configured. Expiry is checked lazily on access.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	sess      Session
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Create(ctx context.Context, sess *Session) error {
	if sess.ID == "" {
		sess.ID = shared.ShortID("stream_", 12)
	}
	sess.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = memoryEntry{
		sess:      *sess,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, id)
		return nil, shared.ErrNotFound
	}
	sess := e.sess
	return &sess, nil
}

func (s *MemoryStore) Resolve(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	delete(s.sessions, id)
	if time.Now().After(e.expiresAt) {
		return nil, shared.ErrNotFound
	}
	sess := e.sess
	return &sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
