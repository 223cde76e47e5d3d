package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "navsession:"
	// Optimistic transactions retried when a concurrent writer touched the key.
	maxUpdateAttempts = 5
)

// Redis-backed SessionStore. Each session is a JSON document whose expiry
// is refreshed on every Save.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps sessions for ttl after their last write; ttl <= 0
// keeps them until deleted.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string { return keyPrefix + id }

func (s *RedisStore) Load(ctx context.Context, sessionID string) (_ *domain.LocationState, err error) {
	defer obs.Time(ctx, "sessions.redis.Load")(&err)

	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: redis get: %w", err)
	}

	var state domain.LocationState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("load session: decode: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, state *domain.LocationState) (err error) {
	defer obs.Time(ctx, "sessions.redis.Save")(&err)

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("save session: encode: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: redis set: %w", err)
	}
	return nil
}

// Update runs a WATCH/MULTI read-modify-write so concurrent updates to
// different slots of one session never overwrite each other.
func (s *RedisStore) Update(
	ctx context.Context,
	sessionID string,
	fn func(*domain.LocationState) error,
) (err error) {
	defer obs.Time(ctx, "sessions.redis.Update")(&err)

	key := sessionKey(sessionID)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("redis get: %w", err)
		}

		var state domain.LocationState
		if err := json.Unmarshal(raw, &state); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		if err := fn(&state); err != nil {
			return err
		}

		enc, err := json.Marshal(&state)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, enc, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		err = s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	n, err := s.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("delete session: redis del: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
