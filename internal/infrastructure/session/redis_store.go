// Package session implements the server-side session store: an opaque bearer
// token mapped to a serialized user snapshot in Redis, TTL-bound.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"smartethnic/internal/domain/entity"
)

var ErrNotFound = errors.New("session not found")

type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration

	// Overridable for tests.
	tokenFunc func() string
	nowFunc   func() time.Time
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		prefix:    prefix,
		ttl:       ttl,
		tokenFunc: uuid.NewString,
		nowFunc:   time.Now,
	}
}

func (s *RedisStore) sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", s.prefix, token)
}

// Create mints a fresh token and stores the user snapshot under it.
func (s *RedisStore) Create(ctx context.Context, user *entity.User) (*entity.Session, error) {
	now := s.nowFunc()
	sess := &entity.Session{
		Token:     s.tokenFunc(),
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.sessionKey(sess.Token), data, s.ttl).Err(); err != nil {
		return nil, err
	}

	return sess, nil
}

// Get restores the session behind token. The snapshot is trusted as-is; the
// user document is not re-read from the document store.
func (s *RedisStore) Get(ctx context.Context, token string) (*entity.Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// Update replaces the stored user snapshot, keeping the token and its expiry.
func (s *RedisStore) Update(ctx context.Context, token string, user *entity.User) error {
	sess, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	sess.User = *user

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := sess.ExpiresAt.Sub(s.nowFunc())
	if ttl <= 0 {
		return ErrNotFound
	}
	return s.client.Set(ctx, s.sessionKey(token), data, ttl).Err()
}

// Delete removes the session. Deleting an unknown token is not an error.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.sessionKey(token)).Err()
}
