// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/mentorlink/mentorlink/internal/apperrors"
	"github.com/mentorlink/mentorlink/internal/model"
)

// TaskService manages the task list attached to each relation.
type TaskService struct {
	store Store
	opts  options
}

// NewTaskService returns a service backed by store.
func NewTaskService(store Store, opts ...Option) *TaskService {
	return &TaskService{store: store, opts: buildOptions(opts)}
}

// CreateTask appends a task to an ACCEPTED relation the actor takes part in.
func (s *TaskService) CreateTask(ctx context.Context, actorID, relationID int, description string) (*model.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.New(apperrors.CodeInvalidRequest, "task description is empty")
	}
	rel, err := s.loadRelation(ctx, actorID, relationID)
	if err != nil {
		return nil, err
	}
	if rel.State != model.StateAccepted {
		return nil, apperrors.E(apperrors.CodeRelationNotAccepted)
	}
	if !rel.Involves(actorID) {
		return nil, apperrors.E(apperrors.CodeUserNotInvolved)
	}

	task, err := s.store.AddTask(ctx, rel.TasksListID, description, now(s.opts.clock))
	if err != nil {
		return nil, internal("add task", err)
	}
	writeAudit(ctx, s.store, actorID, ActionCreateTask, fmt.Sprintf("relation %d task %d", rel.ID, task.ID))
	return &task, nil
}

// ListTasks returns the relation's tasks in id order.
func (s *TaskService) ListTasks(ctx context.Context, actorID, relationID int) ([]model.Task, error) {
	rel, err := s.loadRelation(ctx, actorID, relationID)
	if err != nil {
		return nil, err
	}
	if !rel.Involves(actorID) {
		return nil, apperrors.E(apperrors.CodeUserNotInvolved)
	}
	list, err := s.tasksList(ctx, rel)
	if err != nil {
		return nil, err
	}
	return list.Tasks, nil
}

// DeleteTask removes one task. A missing task is reported before the
// involvement check.
func (s *TaskService) DeleteTask(ctx context.Context, actorID, relationID, taskID int) error {
	rel, err := s.loadRelation(ctx, actorID, relationID)
	if err != nil {
		return err
	}
	list, err := s.tasksList(ctx, rel)
	if err != nil {
		return err
	}
	if list.FindTask(taskID) == nil {
		return apperrors.E(apperrors.CodeTaskDoesNotExist)
	}
	if !rel.Involves(actorID) {
		return apperrors.E(apperrors.CodeUserNotInvolved)
	}

	deleted, err := s.store.DeleteTask(ctx, list.ID, taskID)
	if err != nil {
		return internal("delete task", err)
	}
	if !deleted {
		return apperrors.E(apperrors.CodeTaskDoesNotExist)
	}
	writeAudit(ctx, s.store, actorID, ActionDeleteTask, fmt.Sprintf("relation %d task %d", rel.ID, taskID))
	return nil
}

// CompleteTask marks a task as achieved.
func (s *TaskService) CompleteTask(ctx context.Context, actorID, relationID, taskID int) error {
	rel, err := s.loadRelation(ctx, actorID, relationID)
	if err != nil {
		return err
	}
	if !rel.Involves(actorID) {
		return apperrors.E(apperrors.CodeUserNotInvolved)
	}
	list, err := s.tasksList(ctx, rel)
	if err != nil {
		return err
	}
	task := list.FindTask(taskID)
	if task == nil {
		return apperrors.E(apperrors.CodeTaskDoesNotExist)
	}
	if task.IsDone {
		return apperrors.E(apperrors.CodeTaskAlreadyAchieved)
	}

	changed, err := s.store.CompleteTask(ctx, list.ID, taskID, now(s.opts.clock))
	if err != nil {
		return internal("complete task", err)
	}
	if !changed {
		// Lost a race with another completion.
		return apperrors.E(apperrors.CodeTaskAlreadyAchieved)
	}
	writeAudit(ctx, s.store, actorID, ActionCompleteTask, fmt.Sprintf("relation %d task %d", rel.ID, taskID))
	return nil
}

func (s *TaskService) loadRelation(ctx context.Context, actorID, relationID int) (*model.MentorshipRelation, error) {
	if err := requireUser(ctx, s.store, actorID); err != nil {
		return nil, err
	}
	rel, err := s.store.GetRelation(ctx, relationID)
	if err != nil {
		return nil, internal("load relation", err)
	}
	if rel == nil {
		return nil, apperrors.E(apperrors.CodeRelationDoesNotExist)
	}
	return rel, nil
}

// tasksList loads the relation's list. Relations always own one, so a
// missing list is an internal error.
func (s *TaskService) tasksList(ctx context.Context, rel *model.MentorshipRelation) (*model.TasksList, error) {
	list, err := s.store.GetTasksList(ctx, rel.TasksListID)
	if err != nil {
		return nil, internal("load tasks list", err)
	}
	if list == nil {
		return nil, apperrors.New(apperrors.CodeInternal, fmt.Sprintf("relation %d has no tasks list", rel.ID))
	}
	return list, nil
}
