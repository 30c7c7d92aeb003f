// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"context"
	"sync"
	"time"
)

// Revoker records token IDs that must no longer be accepted. Entries only
// need to outlive the token they revoke.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MemoryRevoker is a process-local Revoker for single-instance deployments
// and tests.
type MemoryRevoker struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevoker returns an empty MemoryRevoker. A nil now uses time.Now.
func NewMemoryRevoker(now func() time.Time) *MemoryRevoker {
	if now == nil {
		now = time.Now
	}
	return &MemoryRevoker{entries: make(map[string]time.Time), now: now}
}

// Revoke marks tokenID revoked until the given time and drops expired entries.
func (m *MemoryRevoker) Revoke(_ context.Context, tokenID string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current := m.now()
	for id, exp := range m.entries {
		if !exp.After(current) {
			delete(m.entries, id)
		}
	}
	if until.After(current) {
		m.entries[tokenID] = until
	}
	return nil
}

// IsRevoked reports whether tokenID is currently revoked.
func (m *MemoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.entries[tokenID]
	return ok && exp.After(m.now()), nil
}

// Len returns the number of tracked entries.
func (m *MemoryRevoker) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
