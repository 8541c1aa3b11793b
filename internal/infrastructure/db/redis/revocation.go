package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const minRevocationTTL = time.Minute

// RevocationList denylists logged-out session credentials in Redis until
// their natural expiry. Key format: revoked:<sha256(credential)> — the raw
// credential never reaches Redis.
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList creates a RevocationList wrapping the given Redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke records the credential as dead. The entry outlives the credential's
// remaining lifetime by at most the rounding of ttl; a floor keeps a
// just-expiring credential from escaping the list entirely.
func (l *RevocationList) Revoke(ctx context.Context, credential string, ttl time.Duration) error {
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}
	if err := l.client.Set(ctx, l.key(credential), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke credential: %w", err)
	}
	return nil
}

// IsRevoked reports whether the credential has been logged out.
func (l *RevocationList) IsRevoked(ctx context.Context, credential string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(credential)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (l *RevocationList) key(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return "revoked:" + hex.EncodeToString(sum[:])
}
