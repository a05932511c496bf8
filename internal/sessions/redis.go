// Package sessions keeps the server-side records behind session cookies.
package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/models"
)

const keyPrefix = "session:"

// RedisStore stores sessions as JSON values expiring after the session TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a store writing sessions with the given lifetime.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

// Save stores sess, replacing any session with the same id.
func (s *RedisStore) Save(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := sessionKey(sess.ID)
	err = s.client.Set(ctx, key, data, s.ttl).Err()

	logger.Log.Infow("session saved",
		"key", key,
		"user_id", sess.UserID,
		"ttl", s.ttl,
		"error", err,
	)

	return err
}

// Get returns the session with the given id, or nil when it is unknown or expired.
func (s *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	key := sessionKey(id)

	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("session not found", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("session lookup failed", "key", key, "error", err)
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal(val, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return &sess, nil
}

// Delete removes the session. Deleting an unknown id is not an error.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	key := sessionKey(id)
	n, err := s.client.Del(ctx, key).Result()

	logger.Log.Infow("session deleted",
		"key", key,
		"result", n,
		"error", err,
	)

	return err
}
