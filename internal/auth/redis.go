// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// RedisRevoker stores revoked token IDs in Redis with a TTL matching the
// token's remaining lifetime, so the set cleans itself up.
type RedisRevoker struct {
	client *backend.Client
	prefix string
	now    func() time.Time
}

// RedisOption configures a RedisRevoker.
type RedisOption func(*RedisRevoker)

// WithPrefix sets the key prefix for revoked tokens.
func WithPrefix(prefix string) RedisOption {
	return func(r *RedisRevoker) {
		r.prefix = prefix
	}
}

// WithNow overrides the clock used to compute TTLs.
func WithNow(now func() time.Time) RedisOption {
	return func(r *RedisRevoker) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRedisRevoker connects to the given Redis server.
func NewRedisRevoker(address, password string, db int, opts ...RedisOption) *RedisRevoker {
	return NewRedisRevokerFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewRedisRevokerFromClient wraps an existing client.
func NewRedisRevokerFromClient(client *backend.Client, opts ...RedisOption) *RedisRevoker {
	r := &RedisRevoker{
		client: client,
		prefix: "mentorlink:revoked:",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RedisRevoker) key(tokenID string) string {
	return r.prefix + tokenID
}

// Ping checks connectivity.
func (r *RedisRevoker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *RedisRevoker) Close() error {
	return r.client.Close()
}

// Revoke stores tokenID until the given time. Already expired tokens are
// ignored.
func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.key(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID has a live revocation entry.
func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, r.key(tokenID)).Err()
	if errors.Is(err, backend.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return true, nil
}
