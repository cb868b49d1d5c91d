package redisotp

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

// Store keeps OTP codes in Redis under one key per (email, purpose).
// A plain SET with TTL replaces any previous code atomically, so at
// most one live code exists per pair even under concurrent sends, and
// Redis expiry purges stale entries without a sweeper.
type Store struct {
	RDB *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{RDB: rdb}
}

func key(email, purpose string) string {
	return "otp:" + purpose + ":" + email
}

// Put stores a fresh token for (email, purpose), invalidating any
// previous one. The key TTL is derived from expiresAt.
func (s *Store) Put(ctx context.Context, email, purpose, code string, expiresAt time.Time) error {
	tok := entity.OtpToken{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return helpers.RedisSetJSON(ctx, s.RDB, key(email, purpose), tok, ttl)
}

// Find returns the stored token when the code matches, nil otherwise.
// Physically expired entries are gone from Redis and can never match;
// the flow controller still checks ExpiresAt for the boundary case
// where the key has not been evicted yet.
func (s *Store) Find(ctx context.Context, email, code, purpose string) (*entity.OtpToken, error) {
	var tok entity.OtpToken
	found, err := helpers.RedisGetJSON(ctx, s.RDB, key(email, purpose), &tok)
	if err != nil {
		return nil, err
	}
	if !found || tok.Code != code {
		return nil, nil
	}
	return &tok, nil
}

// InvalidateAll removes every code for (email, purpose). Used to
// consume a verified code.
func (s *Store) InvalidateAll(ctx context.Context, email, purpose string) error {
	return helpers.RedisDel(ctx, s.RDB, key(email, purpose))
}
