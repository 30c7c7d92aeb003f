// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core holds the mentorship business rules. Services validate
// requests against a Store, apply one state change and record it in the
// audit log. They know nothing about HTTP; failures are apperrors values.
package core

import (
	"context"
	"time"

	"github.com/mentorlink/mentorlink/internal/model"
)

// UserStore is the subset of storage used for user lookups and updates.
type UserStore interface {
	AddUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUserAvailability(ctx context.Context, id int, availableToMentor, needMentoring bool) (bool, error)
}

// RelationStore persists mentorship relations.
type RelationStore interface {
	AddRelation(ctx context.Context, r model.MentorshipRelation) (model.MentorshipRelation, error)
	GetRelation(ctx context.Context, id int) (*model.MentorshipRelation, error)
	UpdateRelation(ctx context.Context, r model.MentorshipRelation) error
	DeleteRelation(ctx context.Context, id int) error
	ListRelationsForUser(ctx context.Context, userID int, state model.RelationState) ([]model.MentorshipRelation, error)
	ListRelationsByState(ctx context.Context, state model.RelationState) ([]model.MentorshipRelation, error)
}

// TaskStore persists task lists.
type TaskStore interface {
	GetTasksList(ctx context.Context, listID int) (*model.TasksList, error)
	AddTask(ctx context.Context, listID int, description string, createdAt time.Time) (model.Task, error)
	DeleteTask(ctx context.Context, listID, taskID int) (bool, error)
	CompleteTask(ctx context.Context, listID, taskID int, completedAt time.Time) (bool, error)
}

// AuditWriter is the minimal contract for emitting audit events.
type AuditWriter interface {
	LogAction(ctx context.Context, userID int, action, details string) error
}

// Store aggregates everything the services need. *db.BunStore satisfies it.
type Store interface {
	UserStore
	RelationStore
	TaskStore
	AuditWriter
}
