// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mentorlink/mentorlink/internal/model"
	"github.com/uptrace/bun"
)

// GetTasksListBun loads the list and its tasks ordered by id, or nil when
// the list does not exist.
func GetTasksListBun(ctx context.Context, db bun.IDB, listID int) (*model.TasksList, error) {
	var lm TasksListModel
	if err := db.NewSelect().Model(&lm).Where("id = ?", listID).Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var tms []TaskModel
	if err := db.NewSelect().Model(&tms).Where("tasks_list_id = ?", listID).OrderExpr("id").Scan(ctx); err != nil {
		return nil, err
	}
	l := &model.TasksList{ID: lm.ID, NextTaskID: lm.NextTaskID, Tasks: make([]model.Task, 0, len(tms))}
	for _, t := range tms {
		l.Tasks = append(l.Tasks, taskModelToModel(t))
	}
	return l, nil
}

// AddTaskBun appends a task to listID. The counter is bumped before it is
// read so concurrent writers serialize on the row lock.
func AddTaskBun(ctx context.Context, bdb *bun.DB, listID int, description string, createdAt time.Time) (model.Task, error) {
	var out model.Task
	err := WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		res, err := ExecRaw(ctx, tx, "UPDATE tasks_lists SET next_task_id = next_task_id + 1 WHERE id = ?", listID)
		if err != nil {
			return err
		}
		if rowsAffected(res) == 0 {
			return fmt.Errorf("tasks list %d not found", listID)
		}
		var next int
		if err := QueryRawInto(ctx, tx, &next, "SELECT next_task_id FROM tasks_lists WHERE id = ?", listID); err != nil {
			return err
		}
		tm := &TaskModel{
			TasksListID: listID,
			ID:          next - 1,
			Description: description,
			CreatedAt:   createdAt.UTC(),
		}
		if _, err := tx.NewInsert().Model(tm).Exec(ctx); err != nil {
			return MapDBError(err)
		}
		out = taskModelToModel(*tm)
		return nil
	})
	return out, err
}

// DeleteTaskBun removes one task. It reports false when nothing was deleted.
func DeleteTaskBun(ctx context.Context, db bun.IDB, listID, taskID int) (bool, error) {
	res, err := db.NewDelete().Model((*TaskModel)(nil)).
		Where("tasks_list_id = ?", listID).
		Where("id = ?", taskID).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	return rowsAffected(res) > 0, nil
}

// CompleteTaskBun marks a task done. Tasks already done are left untouched
// and reported as false.
func CompleteTaskBun(ctx context.Context, db bun.IDB, listID, taskID int, completedAt time.Time) (bool, error) {
	res, err := ExecRaw(ctx, db,
		"UPDATE tasks SET is_done = ?, completed_at = ? WHERE tasks_list_id = ? AND id = ? AND is_done = ?",
		true, completedAt.UTC(), listID, taskID, false)
	if err != nil {
		return false, err
	}
	return rowsAffected(res) > 0, nil
}
