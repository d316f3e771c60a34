package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore remembers which user a session token belongs to.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func (s *SessionStore) sessionKey(token string) string {
	return "session:" + token
}

func (s *SessionStore) Start(ctx context.Context, userID int) (string, error) {
	token := uuid.NewString()
	if err := s.Client.Set(ctx, s.sessionKey(token), userID, s.TTL).Err(); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// UserID resolves a token; ok is false for unknown or expired sessions.
func (s *SessionStore) UserID(ctx context.Context, token string) (int, bool, error) {
	raw, err := s.Client.Get(ctx, s.sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load session: %w", err)
	}
	userID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, &DecodeError{Field: "session user id", Fragment: raw, Err: err}
	}
	return userID, true, nil
}

func (s *SessionStore) End(ctx context.Context, token string) error {
	return s.Client.Del(ctx, s.sessionKey(token)).Err()
}

// PopularityCache keeps a sorted set of ordered quantities per restaurant.
type PopularityCache struct {
	Client *redis.Client
}

func NewPopularityCache(client *redis.Client) *PopularityCache {
	return &PopularityCache{Client: client}
}

func (c *PopularityCache) key(restaurantID int) string {
	return "popularity:" + strconv.Itoa(restaurantID)
}

func (c *PopularityCache) Increment(ctx context.Context, restaurantID, dishID, quantity int) error {
	return c.Client.ZIncrBy(ctx, c.key(restaurantID), float64(quantity), strconv.Itoa(dishID)).Err()
}

// Top returns up to limit dish ids with their scores, best first.
func (c *PopularityCache) Top(ctx context.Context, restaurantID, limit int) ([]redis.Z, error) {
	return c.Client.ZRevRangeWithScores(ctx, c.key(restaurantID), 0, int64(limit-1)).Result()
}
