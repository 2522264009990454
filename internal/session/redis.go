package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis so multiple portal instances can share
// them. Expiry rides on the key TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, token string, user domain.SessionUser, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, keyPrefix+token, payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (domain.SessionUser, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.SessionUser{}, domain.ErrUnauthorized
		}
		return domain.SessionUser{}, fmt.Errorf("session lookup: %w", err)
	}

	var user domain.SessionUser
	if err := json.Unmarshal(payload, &user); err != nil {
		return domain.SessionUser{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return user, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
