package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const oauthStatePrefix = "marketplace:oauth:state:"

var ErrStateNotFound = errors.New("state not found or expired")

// RedisStateStore keeps the PKCE verifier of a pending Google login under
// its state value. Consume uses GETDEL so a state can be redeemed once.
type RedisStateStore struct {
	client *redis.Client
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{client: client}
}

func (s *RedisStateStore) Save(ctx context.Context, state, codeVerifier string, ttl time.Duration) error {
	if state == "" || codeVerifier == "" {
		return errors.New("state and code verifier are required")
	}
	if err := s.client.Set(ctx, oauthStatePrefix+state, codeVerifier, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store oauth state: %w", err)
	}
	return nil
}

func (s *RedisStateStore) Consume(ctx context.Context, state string) (string, error) {
	if state == "" {
		return "", ErrStateNotFound
	}
	verifier, err := s.client.GetDel(ctx, oauthStatePrefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrStateNotFound
		}
		return "", fmt.Errorf("failed to read oauth state: %w", err)
	}
	return verifier, nil
}
