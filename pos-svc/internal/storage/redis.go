package storage

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) Save(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKey(session.Token), payload, s.TTL).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := s.Client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		return nil, err
	}
	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	// Sliding expiry: activity keeps the terminal logged in.
	s.Client.Expire(ctx, sessionKey(token), s.TTL)
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, sessionKey(token)).Err()
}
