package policy

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// disposableDomainsKey is the Redis set operators extend without a redeploy.
const disposableDomainsKey = "regate:disposable_domains"

// RedisDisposableSource answers disposable-domain lookups from a Redis set.
type RedisDisposableSource struct {
	client *redis.Client
	key    string
}

func NewRedisDisposableSource(client *redis.Client) *RedisDisposableSource {
	return &RedisDisposableSource{client: client, key: disposableDomainsKey}
}

func (s *RedisDisposableSource) IsDisposable(ctx context.Context, domain string) (bool, error) {
	member, err := s.client.SIsMember(ctx, s.key, domain).Result()
	if err != nil {
		return false, fmt.Errorf("disposable domain lookup: %w", err)
	}
	return member, nil
}
