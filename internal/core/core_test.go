// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/mentorlink/mentorlink/internal/db"
	"github.com/mentorlink/mentorlink/internal/model"
)

var week = 7 * 24 * time.Hour

// fixture wires services to a per-test in-memory sqlite store with a fixed
// clock. first is the usual requester (a mentor), second the receiver (a
// mentee) and outsider takes part in nothing.
type fixture struct {
	store    *db.BunStore
	clock    *FixedClock
	ms       *MentorshipService
	ts       *TaskService
	us       *UserService
	first    model.User
	second   model.User
	outsider model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	s, err := db.NewStoreFromDSN("sqlite", dsn)
	if err != nil {
		t.Fatalf("NewStoreFromDSN failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	clock := &FixedClock{T: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	f := &fixture{
		store: s,
		clock: clock,
		ms:    NewMentorshipService(s, WithClock(clock)),
		ts:    NewTaskService(s, WithClock(clock)),
		us:    NewUserService(s, WithClock(clock)),
	}
	f.first = f.addUser(t, "first", true, false)
	f.second = f.addUser(t, "second", false, true)
	f.outsider = f.addUser(t, "outsider", true, true)
	return f
}

func (f *fixture) addUser(t *testing.T, username string, mentor, mentee bool) model.User {
	t.Helper()
	u, err := f.store.AddUser(context.Background(), model.User{
		Name:              username,
		Username:          username,
		Email:             username + "@example.org",
		PasswordHash:      "x",
		AvailableToMentor: mentor,
		NeedMentoring:     mentee,
		RegisteredAt:      f.clock.T,
	})
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	return u
}

// addRelation stores a relation directly, bypassing the guards.
func (f *fixture) addRelation(t *testing.T, mentor, mentee, action model.User, state model.RelationState, end time.Time) model.MentorshipRelation {
	t.Helper()
	r, err := f.store.AddRelation(context.Background(), model.MentorshipRelation{
		MentorID:     mentor.ID,
		MenteeID:     mentee.ID,
		ActionUserID: action.ID,
		State:        state,
		CreationDate: f.clock.T,
		EndDate:      end,
		Notes:        "description of a good mentorship relation",
	})
	if err != nil {
		t.Fatalf("AddRelation failed: %v", err)
	}
	return r
}

// pending adds the standard request: first mentors second, sent by first.
func (f *fixture) pending(t *testing.T) model.MentorshipRelation {
	return f.addRelation(t, f.first, f.second, f.first, model.StatePending, f.clock.T.Add(5*week))
}

func (f *fixture) stateOf(t *testing.T, id int) model.RelationState {
	t.Helper()
	r, err := f.store.GetRelation(context.Background(), id)
	if err != nil || r == nil {
		t.Fatalf("GetRelation(%d) failed: %v", id, err)
	}
	return r.State
}

func (f *fixture) setState(t *testing.T, r model.MentorshipRelation, state model.RelationState) {
	t.Helper()
	r.State = state
	if err := f.store.UpdateRelation(context.Background(), r); err != nil {
		t.Fatalf("UpdateRelation failed: %v", err)
	}
}

func wantCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	if !apperrors.HasCode(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func wantOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
