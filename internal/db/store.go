// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"time"

	"github.com/mentorlink/mentorlink/internal/model"
	"github.com/uptrace/bun"
)

// Store defines the interface for all database operations in Mentorlink.
// BunStore is the only implementation; tests in other packages use fakes.
type Store interface {
	// User methods
	AddUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUserAvailability(ctx context.Context, id int, availableToMentor, needMentoring bool) (bool, error)

	// Relation methods
	AddRelation(ctx context.Context, r model.MentorshipRelation) (model.MentorshipRelation, error)
	GetRelation(ctx context.Context, id int) (*model.MentorshipRelation, error)
	UpdateRelation(ctx context.Context, r model.MentorshipRelation) error
	DeleteRelation(ctx context.Context, id int) error
	ListRelationsForUser(ctx context.Context, userID int, state model.RelationState) ([]model.MentorshipRelation, error)
	ListRelationsByState(ctx context.Context, state model.RelationState) ([]model.MentorshipRelation, error)

	// Task methods
	GetTasksList(ctx context.Context, listID int) (*model.TasksList, error)
	AddTask(ctx context.Context, listID int, description string, createdAt time.Time) (model.Task, error)
	DeleteTask(ctx context.Context, listID, taskID int) (bool, error)
	CompleteTask(ctx context.Context, listID, taskID int, completedAt time.Time) (bool, error)

	// Audit Log methods
	LogAction(ctx context.Context, userID int, action, details string) error
	GetAllAuditLogEntries(ctx context.Context, limit int) ([]model.AuditLogEntry, error)

	// Backup methods
	ExportDataForBackup(ctx context.Context) (*model.BackupData, error)
	ImportDataFromBackup(ctx context.Context, backup *model.BackupData) error

	Close() error
}

// BunStore is the bun-backed Store for every supported engine.
type BunStore struct {
	bun    *bun.DB
	dbType string
	dsn    string
}

var _ Store = (*BunStore)(nil)

// BunDB exposes the underlying *bun.DB for maintenance tooling and tests.
func (s *BunStore) BunDB() *bun.DB { return s.bun }

// Type returns the configured engine name.
func (s *BunStore) Type() string { return s.dbType }

// DSN returns the connection string the store was opened with.
func (s *BunStore) DSN() string { return s.dsn }

// Ping checks the connection.
func (s *BunStore) Ping(ctx context.Context) error { return s.bun.PingContext(ctx) }

// Close releases the underlying connection pool.
func (s *BunStore) Close() error {
	if s == nil || s.bun == nil {
		return nil
	}
	return s.bun.Close()
}

func (s *BunStore) AddUser(ctx context.Context, u model.User) (model.User, error) {
	return AddUserBun(ctx, s.bun, u)
}

func (s *BunStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	return GetUserBun(ctx, s.bun, id)
}

func (s *BunStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return GetUserByUsernameBun(ctx, s.bun, username)
}

func (s *BunStore) ListUsers(ctx context.Context) ([]model.User, error) {
	return ListUsersBun(ctx, s.bun)
}

func (s *BunStore) UpdateUserAvailability(ctx context.Context, id int, availableToMentor, needMentoring bool) (bool, error) {
	return UpdateUserAvailabilityBun(ctx, s.bun, id, availableToMentor, needMentoring)
}

func (s *BunStore) AddRelation(ctx context.Context, r model.MentorshipRelation) (model.MentorshipRelation, error) {
	return AddRelationBun(ctx, s.bun, r)
}

func (s *BunStore) GetRelation(ctx context.Context, id int) (*model.MentorshipRelation, error) {
	return GetRelationBun(ctx, s.bun, id)
}

func (s *BunStore) UpdateRelation(ctx context.Context, r model.MentorshipRelation) error {
	return UpdateRelationBun(ctx, s.bun, r)
}

func (s *BunStore) DeleteRelation(ctx context.Context, id int) error {
	return DeleteRelationBun(ctx, s.bun, id)
}

func (s *BunStore) ListRelationsForUser(ctx context.Context, userID int, state model.RelationState) ([]model.MentorshipRelation, error) {
	return ListRelationsForUserBun(ctx, s.bun, userID, state)
}

func (s *BunStore) ListRelationsByState(ctx context.Context, state model.RelationState) ([]model.MentorshipRelation, error) {
	return ListRelationsByStateBun(ctx, s.bun, state)
}

func (s *BunStore) GetTasksList(ctx context.Context, listID int) (*model.TasksList, error) {
	return GetTasksListBun(ctx, s.bun, listID)
}

func (s *BunStore) AddTask(ctx context.Context, listID int, description string, createdAt time.Time) (model.Task, error) {
	return AddTaskBun(ctx, s.bun, listID, description, createdAt)
}

func (s *BunStore) DeleteTask(ctx context.Context, listID, taskID int) (bool, error) {
	return DeleteTaskBun(ctx, s.bun, listID, taskID)
}

func (s *BunStore) CompleteTask(ctx context.Context, listID, taskID int, completedAt time.Time) (bool, error) {
	return CompleteTaskBun(ctx, s.bun, listID, taskID, completedAt)
}

func (s *BunStore) LogAction(ctx context.Context, userID int, action, details string) error {
	return LogActionBun(ctx, s.bun, userID, action, details)
}

func (s *BunStore) GetAllAuditLogEntries(ctx context.Context, limit int) ([]model.AuditLogEntry, error) {
	return GetAllAuditLogEntriesBun(ctx, s.bun, limit)
}

func (s *BunStore) ExportDataForBackup(ctx context.Context) (*model.BackupData, error) {
	return ExportDataForBackupBun(ctx, s.bun)
}

func (s *BunStore) ImportDataFromBackup(ctx context.Context, backup *model.BackupData) error {
	return ImportDataFromBackupBun(ctx, s.bun, backup)
}
