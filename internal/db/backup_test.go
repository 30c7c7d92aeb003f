// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"testing"
	"time"

	"github.com/mentorlink/mentorlink/internal/model"
)

func TestBackup_ExportImportIntoFreshStore(t *testing.T) {
	src := newTestStore(t)
	ctx := context.Background()

	mentor := mustAddUser(t, src, "mentor", true, false)
	mentee := mustAddUser(t, src, "mentee", false, true)
	r := mustAddRelation(t, src, mentor, mentee)
	r.State = model.StateAccepted
	r.AcceptDate = time.Now().UTC().Truncate(time.Second)
	if err := src.UpdateRelation(ctx, r); err != nil {
		t.Fatalf("UpdateRelation failed: %v", err)
	}
	if _, err := src.AddTask(ctx, r.TasksListID, "one", time.Now()); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	two, _ := src.AddTask(ctx, r.TasksListID, "two", time.Now())
	if _, err := src.CompleteTask(ctx, r.TasksListID, two.ID, time.Now()); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}
	_ = src.LogAction(ctx, mentee.ID, "ACCEPT_REQUEST", "relation")

	backup, err := src.ExportDataForBackup(ctx)
	if err != nil {
		t.Fatalf("ExportDataForBackup failed: %v", err)
	}
	if backup.SchemaVersion != model.BackupSchemaVersion {
		t.Fatalf("unexpected schema version %d", backup.SchemaVersion)
	}
	if len(backup.Users) != 2 || backup.Users[0].PasswordHash == "" {
		t.Fatalf("users not exported with hashes: %+v", backup.Users)
	}
	if len(backup.TasksLists) != 1 || len(backup.TasksLists[0].Tasks) != 2 || backup.TasksLists[0].NextTaskID != 3 {
		t.Fatalf("tasks not exported: %+v", backup.TasksLists)
	}

	dst := newTestStore(t)
	// Pre-existing data in the target is replaced.
	mustAddUser(t, dst, "stale", false, false)
	if err := dst.ImportDataFromBackup(ctx, backup); err != nil {
		t.Fatalf("ImportDataFromBackup failed: %v", err)
	}

	if u, _ := dst.GetUserByUsername(ctx, "stale"); u != nil {
		t.Fatalf("stale user survived import")
	}
	got, err := dst.GetRelation(ctx, r.ID)
	if err != nil || got == nil {
		t.Fatalf("relation missing after import: %v", err)
	}
	if got.State != model.StateAccepted || !got.AcceptDate.Equal(r.AcceptDate) {
		t.Fatalf("relation not restored: %+v", got)
	}
	l, _ := dst.GetTasksList(ctx, got.TasksListID)
	if l == nil || len(l.Tasks) != 2 || !l.Tasks[1].IsDone {
		t.Fatalf("tasks not restored: %+v", l)
	}

	// Numbering continues from the restored counter.
	next, err := dst.AddTask(ctx, got.TasksListID, "three", time.Now())
	if err != nil || next.ID != 3 {
		t.Fatalf("expected next task id 3, got %d (%v)", next.ID, err)
	}
	// New rows do not collide with restored IDs.
	fresh := mustAddUser(t, dst, "newcomer", true, true)
	if fresh.ID <= mentee.ID {
		t.Fatalf("new user id %d collides with restored ids", fresh.ID)
	}
}

func TestBackup_RejectsNewerSchema(t *testing.T) {
	s := newTestStore(t)
	err := s.ImportDataFromBackup(context.Background(), &model.BackupData{SchemaVersion: model.BackupSchemaVersion + 1})
	if err == nil {
		t.Fatalf("expected error for newer schema version")
	}
}
