// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mentorlink/mentorlink/internal/model"
)

// newTestStore opens a per-test in-memory sqlite store and closes it when
// the test ends.
func newTestStore(t *testing.T) *BunStore {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	s, err := NewStoreFromDSN("sqlite", dsn)
	if err != nil {
		t.Fatalf("NewStoreFromDSN failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// mustAddUser inserts a user with the given username and matching flags.
func mustAddUser(t *testing.T, s *BunStore, username string, mentor, mentee bool) model.User {
	t.Helper()
	u, err := s.AddUser(context.Background(), model.User{
		Name:              strings.ToUpper(username[:1]) + username[1:],
		Username:          username,
		Email:             username + "@example.org",
		PasswordHash:      "hash-" + username,
		AvailableToMentor: mentor,
		NeedMentoring:     mentee,
		RegisteredAt:      time.Now().UTC().Truncate(time.Second),
	})
	if err != nil {
		t.Fatalf("AddUser(%s) failed: %v", username, err)
	}
	return u
}

// mustAddRelation inserts a pending relation sent by mentee.
func mustAddRelation(t *testing.T, s *BunStore, mentor, mentee model.User) model.MentorshipRelation {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	r, err := s.AddRelation(context.Background(), model.MentorshipRelation{
		MentorID:     mentor.ID,
		MenteeID:     mentee.ID,
		ActionUserID: mentee.ID,
		State:        model.StatePending,
		CreationDate: now,
		EndDate:      now.Add(8 * 7 * 24 * time.Hour),
		Notes:        "learn go",
	})
	if err != nil {
		t.Fatalf("AddRelation failed: %v", err)
	}
	return r
}
