// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds helpers shared by tests outside internal/db.
package testutil

import (
	"strings"
	"testing"

	"github.com/mentorlink/mentorlink/internal/db"
)

// MemoryDSN returns a shared-cache in-memory SQLite DSN unique to t.
func MemoryDSN(t testing.TB, prefix string) string {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return "file:" + prefix + "_" + name + "?mode=memory&cache=shared"
}

// NewStore opens a migrated in-memory store that is closed with the test.
func NewStore(t testing.TB, prefix string) (*db.BunStore, string) {
	t.Helper()
	dsn := MemoryDSN(t, prefix)
	st, err := db.NewStoreFromDSN("sqlite", dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st, dsn
}
