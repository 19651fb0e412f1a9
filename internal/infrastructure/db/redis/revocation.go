package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const minRevocationTTL = time.Minute

// RevocationStore records users whose outstanding tokens must be rejected.
// Key format: revoked:user:<user_id>
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// RevokeUser marks every token of userID as revoked. The mark expires after
// ttl, which callers set to the token lifetime.
func (s *RevocationStore) RevokeUser(ctx context.Context, userID string, ttl time.Duration) error {
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}
	if err := s.client.Set(ctx, s.key(userID), time.Now().UTC().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("revoke user: %w", err)
	}
	return nil
}

// IsRevoked reports whether userID has been revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, userID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(userID string) string {
	return "revoked:user:" + userID
}
