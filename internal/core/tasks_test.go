// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/mentorlink/mentorlink/internal/model"
)

func acceptedRelation(t *testing.T, f *fixture) model.MentorshipRelation {
	t.Helper()
	return f.addRelation(t, f.first, f.second, f.first, model.StateAccepted, f.clock.T.Add(6*week))
}

func TestCreateTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pending := f.pending(t)

	_, err := f.ts.CreateTask(ctx, 999, pending.ID, "read")
	wantCode(t, err, apperrors.CodeUserDoesNotExist)
	_, err = f.ts.CreateTask(ctx, f.first.ID, 999, "read")
	wantCode(t, err, apperrors.CodeRelationDoesNotExist)
	_, err = f.ts.CreateTask(ctx, f.first.ID, pending.ID, "read")
	wantCode(t, err, apperrors.CodeRelationNotAccepted)

	rel := acceptedRelation(t, f)
	_, err = f.ts.CreateTask(ctx, f.outsider.ID, rel.ID, "read")
	wantCode(t, err, apperrors.CodeUserNotInvolved)
	if apperrors.StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", apperrors.StatusOf(err))
	}
	_, err = f.ts.CreateTask(ctx, f.first.ID, rel.ID, "   ")
	wantCode(t, err, apperrors.CodeInvalidRequest)

	task, err := f.ts.CreateTask(ctx, f.second.ID, rel.ID, "Write a CLI")
	wantOK(t, err)
	if task.ID != 1 || task.Description != "Write a CLI" || task.IsDone || !task.CreatedAt.Equal(f.clock.T) {
		t.Fatalf("unexpected task: %+v", task)
	}
	second, err := f.ts.CreateTask(ctx, f.first.ID, rel.ID, "Review it")
	wantOK(t, err)
	if second.ID != 2 {
		t.Fatalf("expected id 2, got %d", second.ID)
	}
}

func TestListTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rel := acceptedRelation(t, f)
	for _, d := range []string{"a", "b", "c"} {
		if _, err := f.ts.CreateTask(ctx, f.first.ID, rel.ID, d); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	_, err := f.ts.ListTasks(ctx, f.outsider.ID, rel.ID)
	wantCode(t, err, apperrors.CodeUserNotInvolved)
	_, err = f.ts.ListTasks(ctx, f.first.ID, 999)
	wantCode(t, err, apperrors.CodeRelationDoesNotExist)

	tasks, err := f.ts.ListTasks(ctx, f.second.ID, rel.ID)
	wantOK(t, err)
	if len(tasks) != 3 || tasks[0].Description != "a" || tasks[2].ID != 3 {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}

	// Listing works in any state.
	f.setState(t, rel, model.StateCompleted)
	tasks, err = f.ts.ListTasks(ctx, f.first.ID, rel.ID)
	wantOK(t, err)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks after completion, got %d", len(tasks))
	}
}

func TestDeleteTask_GuardOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rel := acceptedRelation(t, f)
	task, err := f.ts.CreateTask(ctx, f.first.ID, rel.ID, "temp")
	wantOK(t, err)

	// A missing task is reported even to outsiders.
	wantCode(t, f.ts.DeleteTask(ctx, f.outsider.ID, rel.ID, 42), apperrors.CodeTaskDoesNotExist)
	wantCode(t, f.ts.DeleteTask(ctx, f.outsider.ID, rel.ID, task.ID), apperrors.CodeUserNotInvolved)

	wantOK(t, f.ts.DeleteTask(ctx, f.second.ID, rel.ID, task.ID))
	wantCode(t, f.ts.DeleteTask(ctx, f.second.ID, rel.ID, task.ID), apperrors.CodeTaskDoesNotExist)
}

func TestCompleteTask_GuardOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rel := acceptedRelation(t, f)
	task, err := f.ts.CreateTask(ctx, f.first.ID, rel.ID, "ship")
	wantOK(t, err)

	// Involvement is checked before the task lookup.
	wantCode(t, f.ts.CompleteTask(ctx, f.outsider.ID, rel.ID, 42), apperrors.CodeUserNotInvolved)
	wantCode(t, f.ts.CompleteTask(ctx, f.first.ID, rel.ID, 42), apperrors.CodeTaskDoesNotExist)

	f.clock.T = f.clock.T.Add(2 * time.Hour)
	wantOK(t, f.ts.CompleteTask(ctx, f.first.ID, rel.ID, task.ID))
	err = f.ts.CompleteTask(ctx, f.second.ID, rel.ID, task.ID)
	wantCode(t, err, apperrors.CodeTaskAlreadyAchieved)
	if apperrors.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", apperrors.StatusOf(err))
	}

	tasks, _ := f.ts.ListTasks(ctx, f.first.ID, rel.ID)
	if !tasks[0].IsDone || !tasks[0].CompletedAt.Equal(f.clock.T) {
		t.Fatalf("task not completed: %+v", tasks[0])
	}
}
