package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker remembers cleared sessions until their cookies would have expired.
type Revoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type redisRevoker struct {
	redis *redis.Client
}

// NewRedisRevoker creates a Revoker backed by Redis keys with TTLs.
func NewRedisRevoker(client *redis.Client) Revoker {
	return &redisRevoker{redis: client}
}

func revokedKey(sessionID string) string {
	return fmt.Sprintf("revoked_session:%s", sessionID)
}

func (r *redisRevoker) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.redis.Set(ctx, revokedKey(sessionID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session %s: %w", sessionID, err)
	}
	return nil
}

func (r *redisRevoker) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.redis.Exists(ctx, revokedKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session %s: %w", sessionID, err)
	}
	return n > 0, nil
}
