package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseRelationState(t *testing.T) {
	for _, in := range []string{"pending", "ACCEPTED", " Rejected ", "cancelled", "completed"} {
		if _, err := ParseRelationState(in); err != nil {
			t.Fatalf("expected %q to parse: %v", in, err)
		}
	}
	if _, err := ParseRelationState("archived"); err == nil {
		t.Fatalf("expected error for unknown state")
	}
}

func TestRelationInvolvement(t *testing.T) {
	r := MentorshipRelation{MentorID: 1, MenteeID: 2, ActionUserID: 1}
	if !r.Involves(1) || !r.Involves(2) || r.Involves(3) {
		t.Fatalf("unexpected involvement result for %+v", r)
	}
	if !r.SentBy(1) || r.SentBy(2) {
		t.Fatalf("unexpected sender result for %+v", r)
	}
	if v := r.ViewFor(2); v.SentByMe {
		t.Fatalf("receiver view should not be sent_by_me")
	}
	if v := r.ViewFor(1); !v.SentByMe {
		t.Fatalf("sender view should be sent_by_me")
	}
}

func TestRelationView_JSONIsFlat(t *testing.T) {
	r := MentorshipRelation{ID: 7, MentorID: 1, MenteeID: 2, ActionUserID: 2, State: StatePending, EndDate: time.Unix(0, 0).UTC()}
	b, err := json.Marshal(r.ViewFor(2))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"id":7`) || !strings.Contains(s, `"sent_by_me":true`) {
		t.Fatalf("expected flattened view, got %s", s)
	}
	if strings.Contains(s, "accept_date") {
		t.Fatalf("zero accept_date should be omitted, got %s", s)
	}
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	b, _ := json.Marshal(User{ID: 1, Username: "alice", PasswordHash: "secret"})
	if strings.Contains(string(b), "secret") {
		t.Fatalf("password hash leaked: %s", b)
	}
}

func TestFindTask(t *testing.T) {
	l := TasksList{Tasks: []Task{{ID: 1}, {ID: 3}}}
	if l.FindTask(3) == nil {
		t.Fatalf("expected task 3")
	}
	if l.FindTask(2) != nil {
		t.Fatalf("did not expect task 2")
	}
}
