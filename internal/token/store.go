package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Kind is the cache slot a token occupies. Access and refresh tokens are
// structurally identical; only the slot and its TTL differ.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Store holds the single currently-valid token of each kind per subject.
// This is not a performance cache: it is the source of truth for session
// validity, and overwriting an entry is what revokes the previous token.
type Store interface {
	// Put records the current token of the given kind for the subject,
	// overwriting any previous one. The entry expires after the kind's TTL.
	Put(ctx context.Context, kind Kind, subject, token string) error
	// Get returns the current token, or "" when no entry exists.
	// Absence is not an error.
	Get(ctx context.Context, kind Kind, subject string) (string, error)
	// Evict removes both the access and refresh entries for the subject.
	// Evicting an absent subject is a no-op.
	Evict(ctx context.Context, subject string) error
}

// RedisStore implements Store on Redis. Per-key atomicity of SET and DEL
// gives the last-writer-wins ordering the validator depends on.
type RedisStore struct {
	client     *redis.Client
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewRedisStore creates a RedisStore with independent TTLs per kind
func NewRedisStore(client *redis.Client, accessTTL, refreshTTL time.Duration) *RedisStore {
	return &RedisStore{
		client:     client,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *RedisStore) key(kind Kind, subject string) string {
	return fmt.Sprintf("jwt:%s:%s", kind, subject)
}

func (s *RedisStore) ttl(kind Kind) time.Duration {
	if kind == KindRefresh {
		return s.refreshTTL
	}
	return s.accessTTL
}

// Put records the current token for (kind, subject)
func (s *RedisStore) Put(ctx context.Context, kind Kind, subject, token string) error {
	if err := s.client.Set(ctx, s.key(kind, subject), token, s.ttl(kind)).Err(); err != nil {
		return fmt.Errorf("token store put: %w", err)
	}
	return nil
}

// Get returns the current token for (kind, subject), or "" when absent
func (s *RedisStore) Get(ctx context.Context, kind Kind, subject string) (string, error) {
	val, err := s.client.Get(ctx, s.key(kind, subject)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("token store get: %w", err)
	}
	return val, nil
}

// Evict removes both entries for the subject
func (s *RedisStore) Evict(ctx context.Context, subject string) error {
	keys := []string{
		s.key(KindAccess, subject),
		s.key(KindRefresh, subject),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("token store evict: %w", err)
	}
	return nil
}
