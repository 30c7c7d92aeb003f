// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the plain domain types shared by the storage, service
// and transport layers.
package model

import (
	"fmt"
	"strings"
	"time"
)

// User is a registered member who can mentor, be mentored, or both.
type User struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	AvailableToMentor bool      `json:"available_to_mentor"`
	NeedMentoring     bool      `json:"need_mentoring"`
	RegisteredAt      time.Time `json:"registered_at"`
}

// String returns the username with the id, e.g. "alice(#3)".
func (u User) String() string {
	return fmt.Sprintf("%s(#%d)", u.Username, u.ID)
}

// RelationState is the lifecycle state of a mentorship relation.
type RelationState string

const (
	StatePending   RelationState = "PENDING"
	StateAccepted  RelationState = "ACCEPTED"
	StateRejected  RelationState = "REJECTED"
	StateCancelled RelationState = "CANCELLED"
	StateCompleted RelationState = "COMPLETED"
)

// RelationStates lists every state in lifecycle order.
var RelationStates = []RelationState{StatePending, StateAccepted, StateRejected, StateCancelled, StateCompleted}

// ParseRelationState parses a state name case-insensitively.
func ParseRelationState(s string) (RelationState, error) {
	want := RelationState(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range RelationStates {
		if st == want {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown relation state %q", s)
}

// MentorshipRelation links a mentor and a mentee. ActionUserID is the user
// who sent the request.
type MentorshipRelation struct {
	ID           int           `json:"id"`
	MentorID     int           `json:"mentor_id"`
	MenteeID     int           `json:"mentee_id"`
	ActionUserID int           `json:"action_user_id"`
	State        RelationState `json:"state"`
	CreationDate time.Time     `json:"creation_date"`
	AcceptDate   time.Time     `json:"accept_date,omitzero"`
	EndDate      time.Time     `json:"end_date"`
	Notes        string        `json:"notes"`
	TasksListID  int           `json:"tasks_list_id"`
}

// Involves reports whether userID is the mentor or the mentee.
func (r MentorshipRelation) Involves(userID int) bool {
	return r.MentorID == userID || r.MenteeID == userID
}

// SentBy reports whether userID created the request.
func (r MentorshipRelation) SentBy(userID int) bool {
	return r.ActionUserID == userID
}

// RelationView is a relation as seen by one of its participants.
type RelationView struct {
	MentorshipRelation
	SentByMe bool `json:"sent_by_me"`
}

// ViewFor projects r for userID.
func (r MentorshipRelation) ViewFor(userID int) RelationView {
	return RelationView{MentorshipRelation: r, SentByMe: r.SentBy(userID)}
}

// Task is a single item on a relation's task list. IDs are numbered per list.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	IsDone      bool      `json:"is_done"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
}

// TasksList is the ordered task collection owned by one relation.
type TasksList struct {
	ID         int    `json:"id"`
	NextTaskID int    `json:"next_task_id"`
	Tasks      []Task `json:"tasks"`
}

// FindTask returns the task with the given id, or nil.
func (l *TasksList) FindTask(id int) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			return &l.Tasks[i]
		}
	}
	return nil
}

// AuditLogEntry is one recorded mutation.
type AuditLogEntry struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    int       `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}
