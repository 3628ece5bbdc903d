package redis

import (
	"context"
	"errors"
	"time"
)

const blocklistPrefix = "token:revoked:"

// TokenBlocklist remembers revoked token IDs until the tokens would have expired anyway
type TokenBlocklist struct{}

var (
	setBlocklistValue    = Set
	existsBlocklistValue = Exists
)

// NewTokenBlocklist creates a blocklist backed by the package client
func NewTokenBlocklist() *TokenBlocklist {
	return &TokenBlocklist{}
}

// Revoke blocks tokenID for ttl. A non-positive ttl means the token is already dead and nothing is stored.
func (b *TokenBlocklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return errors.New("token id is required")
	}
	if ttl <= 0 {
		return nil
	}
	return setBlocklistValue(ctx, blocklistPrefix+tokenID, "1", ttl)
}

// IsRevoked reports whether tokenID has been revoked
func (b *TokenBlocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	return existsBlocklistValue(ctx, blocklistPrefix+tokenID)
}
