package identity

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"time"

	"github.com/redis/go-redis/v9"
)

func keyConfirmToken(userID string) string { return "email:confirm:" + userID }

// TokenProvider issues and verifies email-confirmation tokens. Tokens are
// random, single use, and expire after the configured TTL.
type TokenProvider struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenProvider(rdb *redis.Client, ttl time.Duration) *TokenProvider {
	return &TokenProvider{rdb: rdb, ttl: ttl}
}

// Generate creates a confirmation token for the user and stores it under a TTL.
func (p *TokenProvider) Generate(ctx context.Context, userID string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	tok := base64.RawURLEncoding.EncodeToString(b)
	if err := p.rdb.Set(ctx, keyConfirmToken(userID), tok, p.ttl).Err(); err != nil {
		return "", err
	}
	return tok, nil
}

// Consume verifies the token for the user and invalidates it on success.
func (p *TokenProvider) Consume(ctx context.Context, userID, token string) bool {
	stored, err := p.rdb.Get(ctx, keyConfirmToken(userID)).Result()
	if err != nil || stored == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return false
	}
	p.rdb.Del(ctx, keyConfirmToken(userID))
	return true
}
