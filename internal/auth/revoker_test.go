// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRevokerContract checks behaviour shared by every Revoker.
func runRevokerContract(t *testing.T, r Revoker, advance func(time.Duration)) {
	t.Helper()
	ctx := context.Background()
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", start.Add(time.Minute)))
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Already expired tokens need no entry.
	require.NoError(t, r.Revoke(ctx, "jti-old", start.Add(-time.Minute)))
	revoked, err = r.IsRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)

	advance(2 * time.Minute)
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry should expire with the token")
}

func TestMemoryRevoker(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	r := NewMemoryRevoker(func() time.Time { return now })
	runRevokerContract(t, r, func(d time.Duration) { now = now.Add(d) })

	// Expired entries are swept on the next write.
	require.NoError(t, r.Revoke(context.Background(), "jti-2", now.Add(time.Hour)))
	assert.Equal(t, 1, r.Len())
}

func TestRedisRevoker(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	r := NewRedisRevokerFromClient(client, WithPrefix("test:revoked:"), WithNow(func() time.Time { return now }))
	defer func() { _ = r.Close() }()
	require.NoError(t, r.Ping(context.Background()))

	runRevokerContract(t, r, func(d time.Duration) {
		now = now.Add(d)
		mr.FastForward(d)
	})
	assert.False(t, mr.Exists("test:revoked:jti-old"))
}

func TestRedisRevoker_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	r := NewRedisRevoker(addr, "", 0)
	defer func() { _ = r.Close() }()
	_, err = r.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}
