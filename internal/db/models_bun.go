// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"database/sql"
	"time"

	"github.com/mentorlink/mentorlink/internal/model"
	"github.com/uptrace/bun"
)

// UserModel maps the users table.
type UserModel struct {
	bun.BaseModel     `bun:"table:users"`
	ID                int       `bun:"id,pk,autoincrement"`
	Name              string    `bun:"name"`
	Username          string    `bun:"username"`
	Email             string    `bun:"email"`
	PasswordHash      string    `bun:"password_hash"`
	AvailableToMentor bool      `bun:"available_to_mentor"`
	NeedMentoring     bool      `bun:"need_mentoring"`
	RegisteredAt      time.Time `bun:"registered_at"`
}

// RelationModel maps mentorship_relations. AcceptDate is NULL until the
// request is accepted.
type RelationModel struct {
	bun.BaseModel `bun:"table:mentorship_relations"`
	ID            int            `bun:"id,pk,autoincrement"`
	MentorID      int            `bun:"mentor_id"`
	MenteeID      int            `bun:"mentee_id"`
	ActionUserID  int            `bun:"action_user_id"`
	State         string         `bun:"state"`
	CreationDate  time.Time      `bun:"creation_date"`
	AcceptDate    time.Time      `bun:"accept_date,nullzero"`
	EndDate       time.Time      `bun:"end_date"`
	Notes         sql.NullString `bun:"notes"`
	TasksListID   sql.NullInt64  `bun:"tasks_list_id"`
}

// TasksListModel maps tasks_lists.
type TasksListModel struct {
	bun.BaseModel `bun:"table:tasks_lists"`
	ID            int `bun:"id,pk,autoincrement"`
	NextTaskID    int `bun:"next_task_id"`
}

// TaskModel maps tasks. The key is (tasks_list_id, id).
type TaskModel struct {
	bun.BaseModel `bun:"table:tasks"`
	TasksListID   int       `bun:"tasks_list_id,pk"`
	ID            int       `bun:"id,pk"`
	Description   string    `bun:"description"`
	CreatedAt     time.Time `bun:"created_at"`
	IsDone        bool      `bun:"is_done"`
	CompletedAt   time.Time `bun:"completed_at,nullzero"`
}

// AuditLogModel maps the audit_log table.
type AuditLogModel struct {
	bun.BaseModel `bun:"table:audit_log"`
	ID            int            `bun:"id,pk,autoincrement"`
	Timestamp     time.Time      `bun:"timestamp"`
	UserID        int            `bun:"user_id"`
	Action        string         `bun:"action"`
	Details       sql.NullString `bun:"details"`
}

// --- Mapping helpers (centralized conversions) ---
func userModelToModel(u UserModel) model.User {
	return model.User{
		ID:                u.ID,
		Name:              u.Name,
		Username:          u.Username,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		AvailableToMentor: u.AvailableToMentor,
		NeedMentoring:     u.NeedMentoring,
		RegisteredAt:      u.RegisteredAt.UTC(),
	}
}

func relationModelToModel(r RelationModel) model.MentorshipRelation {
	rel := model.MentorshipRelation{
		ID:           r.ID,
		MentorID:     r.MentorID,
		MenteeID:     r.MenteeID,
		ActionUserID: r.ActionUserID,
		State:        model.RelationState(r.State),
		CreationDate: r.CreationDate.UTC(),
		EndDate:      r.EndDate.UTC(),
	}
	if !r.AcceptDate.IsZero() {
		rel.AcceptDate = r.AcceptDate.UTC()
	}
	if r.Notes.Valid {
		rel.Notes = r.Notes.String
	}
	if r.TasksListID.Valid {
		rel.TasksListID = int(r.TasksListID.Int64)
	}
	return rel
}

func relationToModel(r model.MentorshipRelation) RelationModel {
	return RelationModel{
		ID:           r.ID,
		MentorID:     r.MentorID,
		MenteeID:     r.MenteeID,
		ActionUserID: r.ActionUserID,
		State:        string(r.State),
		CreationDate: r.CreationDate.UTC(),
		AcceptDate:   r.AcceptDate.UTC(),
		EndDate:      r.EndDate.UTC(),
		Notes:        sql.NullString{String: r.Notes, Valid: r.Notes != ""},
		TasksListID:  sql.NullInt64{Int64: int64(r.TasksListID), Valid: r.TasksListID != 0},
	}
}

func taskModelToModel(t TaskModel) model.Task {
	task := model.Task{ID: t.ID, Description: t.Description, CreatedAt: t.CreatedAt.UTC(), IsDone: t.IsDone}
	if !t.CompletedAt.IsZero() {
		task.CompletedAt = t.CompletedAt.UTC()
	}
	return task
}

func auditLogModelToModel(a AuditLogModel) model.AuditLogEntry {
	e := model.AuditLogEntry{ID: a.ID, Timestamp: a.Timestamp.UTC(), UserID: a.UserID, Action: a.Action}
	if a.Details.Valid {
		e.Details = a.Details.String
	}
	return e
}
