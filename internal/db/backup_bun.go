// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/mentorlink/mentorlink/internal/model"
	"github.com/uptrace/bun"
)

// ExportDataForBackupBun exports all tables' data into a model.BackupData
// using a single transaction.
func ExportDataForBackupBun(ctx context.Context, bdb *bun.DB) (*model.BackupData, error) {
	var backup *model.BackupData
	err := WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		backup = &model.BackupData{SchemaVersion: model.BackupSchemaVersion}

		// Users
		var users []UserModel
		if err := tx.NewSelect().Model(&users).OrderExpr("id").Scan(ctx); err != nil {
			return err
		}
		for _, u := range users {
			mu := userModelToModel(u)
			backup.Users = append(backup.Users, model.BackupUser{User: mu, PasswordHash: u.PasswordHash})
		}

		// Task lists with their tasks
		var lists []TasksListModel
		if err := tx.NewSelect().Model(&lists).OrderExpr("id").Scan(ctx); err != nil {
			return err
		}
		var tasks []TaskModel
		if err := tx.NewSelect().Model(&tasks).OrderExpr("tasks_list_id, id").Scan(ctx); err != nil {
			return err
		}
		byList := make(map[int][]model.Task, len(lists))
		for _, t := range tasks {
			byList[t.TasksListID] = append(byList[t.TasksListID], taskModelToModel(t))
		}
		for _, l := range lists {
			backup.TasksLists = append(backup.TasksLists, model.BackupTasksList{ID: l.ID, NextTaskID: l.NextTaskID, Tasks: byList[l.ID]})
		}

		// Relations
		var rels []RelationModel
		if err := tx.NewSelect().Model(&rels).OrderExpr("id").Scan(ctx); err != nil {
			return err
		}
		backup.Relations = relationModelsToModels(rels)

		// Audit log
		var als []AuditLogModel
		if err := tx.NewSelect().Model(&als).OrderExpr("id").Scan(ctx); err != nil {
			return err
		}
		for _, a := range als {
			backup.AuditLogEntries = append(backup.AuditLogEntries, auditLogModelToModel(a))
		}
		return nil
	})
	return backup, err
}

// ImportDataFromBackupBun performs a full wipe-and-replace using a Bun
// transaction. IDs are preserved.
func ImportDataFromBackupBun(ctx context.Context, bdb *bun.DB, backup *model.BackupData) error {
	if backup == nil {
		return fmt.Errorf("nil backup")
	}
	if backup.SchemaVersion > model.BackupSchemaVersion {
		return fmt.Errorf("backup schema version %d is newer than supported version %d", backup.SchemaVersion, model.BackupSchemaVersion)
	}
	err := WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		// Wipe in foreign-key order.
		tables := []string{"audit_log", "mentorship_relations", "tasks", "tasks_lists", "users"}
		for _, t := range tables {
			if _, err := ExecRaw(ctx, tx, fmt.Sprintf("DELETE FROM %s", t)); err != nil {
				return err
			}
		}

		for _, bu := range backup.Users {
			um := &UserModel{
				ID:                bu.ID,
				Name:              bu.Name,
				Username:          bu.Username,
				Email:             bu.Email,
				PasswordHash:      bu.PasswordHash,
				AvailableToMentor: bu.AvailableToMentor,
				NeedMentoring:     bu.NeedMentoring,
				RegisteredAt:      bu.RegisteredAt.UTC(),
			}
			if _, err := tx.NewInsert().Model(um).Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		for _, bl := range backup.TasksLists {
			if _, err := tx.NewInsert().Model(&TasksListModel{ID: bl.ID, NextTaskID: bl.NextTaskID}).Exec(ctx); err != nil {
				return MapDBError(err)
			}
			for _, t := range bl.Tasks {
				tm := &TaskModel{
					TasksListID: bl.ID,
					ID:          t.ID,
					Description: t.Description,
					CreatedAt:   t.CreatedAt.UTC(),
					IsDone:      t.IsDone,
					CompletedAt: t.CompletedAt.UTC(),
				}
				if _, err := tx.NewInsert().Model(tm).Exec(ctx); err != nil {
					return MapDBError(err)
				}
			}
		}
		for _, r := range backup.Relations {
			rm := relationToModel(r)
			if _, err := tx.NewInsert().Model(&rm).Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		for _, a := range backup.AuditLogEntries {
			am := &AuditLogModel{ID: a.ID, Timestamp: a.Timestamp.UTC(), UserID: a.UserID, Action: a.Action}
			am.Details.String, am.Details.Valid = a.Details, a.Details != ""
			if _, err := tx.NewInsert().Model(am).Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return resetSequences(ctx, bdb)
}

// resetSequences moves Postgres serial sequences past the imported IDs.
// Other engines derive the next id from the table contents.
func resetSequences(ctx context.Context, bdb *bun.DB) error {
	if bdb.Dialect().Name().String() != "pg" {
		return nil
	}
	for _, t := range []string{"users", "tasks_lists", "mentorship_relations", "audit_log"} {
		q := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)", t)
		if _, err := ExecRaw(ctx, bdb, q); err != nil {
			return fmt.Errorf("failed to reset sequence for %s: %w", t, err)
		}
	}
	return nil
}
