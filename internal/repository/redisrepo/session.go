package redisrepo

import (
	"context"

	"github.com/hienthq-zcv/admin-service/internal/session"
	"github.com/redis/go-redis/v9"
)

// sessionStorage persists the admin session token, standing in for the
// web client's browser-local storage.
type sessionStorage struct {
	repo Default
}

func NewSessionStorage(repo Default) session.Storage {
	return &sessionStorage{
		repo: repo,
	}
}

func (s *sessionStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.repo.Get(ctx, SessionKey(key)).Result()
	if err == redis.Nil {
		return "", session.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (s *sessionStorage) Set(ctx context.Context, key string, value string) error {
	return s.repo.Set(ctx, SessionKey(key), value, 0)
}

func (s *sessionStorage) Del(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = SessionKey(key)
	}

	return s.repo.Del(ctx, prefixed...).Err()
}
