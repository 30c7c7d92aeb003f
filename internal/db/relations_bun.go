// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mentorlink/mentorlink/internal/model"
	"github.com/uptrace/bun"
)

// AddRelationBun creates an empty task list and the relation pointing at it
// in a single transaction. The returned relation carries both new IDs.
func AddRelationBun(ctx context.Context, bdb *bun.DB, r model.MentorshipRelation) (model.MentorshipRelation, error) {
	var out model.MentorshipRelation
	err := WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		tl := &TasksListModel{NextTaskID: 1}
		if _, err := tx.NewInsert().Model(tl).Returning("id").Exec(ctx); err != nil {
			return fmt.Errorf("failed to create tasks list: %w", err)
		}
		r.TasksListID = tl.ID
		rm := relationToModel(r)
		rm.ID = 0
		if _, err := tx.NewInsert().Model(&rm).Returning("id").Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert mentorship relation: %w", MapDBError(err))
		}
		out = relationModelToModel(rm)
		return nil
	})
	return out, err
}

// GetRelationBun returns the relation with id, or nil when absent.
func GetRelationBun(ctx context.Context, db bun.IDB, id int) (*model.MentorshipRelation, error) {
	var rm RelationModel
	err := db.NewSelect().Model(&rm).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	r := relationModelToModel(rm)
	return &r, nil
}

// UpdateRelationBun persists the mutable columns of r: state, accept date,
// end date and notes.
func UpdateRelationBun(ctx context.Context, db bun.IDB, r model.MentorshipRelation) error {
	rm := relationToModel(r)
	_, err := db.NewUpdate().Model(&rm).
		Column("state", "accept_date", "end_date", "notes").
		WherePK().
		Exec(ctx)
	return err
}

// DeleteRelationBun removes the relation together with its task list and
// tasks. Missing relations are a no-op.
func DeleteRelationBun(ctx context.Context, bdb *bun.DB, id int) error {
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		rel, err := GetRelationBun(ctx, tx, id)
		if err != nil || rel == nil {
			return err
		}
		// The relation references the list, so it goes first.
		if _, err := tx.NewDelete().Model((*RelationModel)(nil)).Where("id = ?", id).Exec(ctx); err != nil {
			return err
		}
		if rel.TasksListID == 0 {
			return nil
		}
		if _, err := tx.NewDelete().Model((*TaskModel)(nil)).Where("tasks_list_id = ?", rel.TasksListID).Exec(ctx); err != nil {
			return err
		}
		_, err = tx.NewDelete().Model((*TasksListModel)(nil)).Where("id = ?", rel.TasksListID).Exec(ctx)
		return err
	})
}

// ListRelationsForUserBun returns relations where userID is mentor or mentee,
// newest first. An empty state matches every state.
func ListRelationsForUserBun(ctx context.Context, db bun.IDB, userID int, state model.RelationState) ([]model.MentorshipRelation, error) {
	var rms []RelationModel
	q := db.NewSelect().Model(&rms).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("mentor_id = ?", userID).WhereOr("mentee_id = ?", userID)
		})
	if state != "" {
		q = q.Where("state = ?", string(state))
	}
	if err := q.OrderExpr("creation_date DESC, id DESC").Scan(ctx); err != nil {
		return nil, err
	}
	return relationModelsToModels(rms), nil
}

// ListRelationsByStateBun returns every relation in state, oldest first.
func ListRelationsByStateBun(ctx context.Context, db bun.IDB, state model.RelationState) ([]model.MentorshipRelation, error) {
	var rms []RelationModel
	if err := db.NewSelect().Model(&rms).Where("state = ?", string(state)).OrderExpr("id").Scan(ctx); err != nil {
		return nil, err
	}
	return relationModelsToModels(rms), nil
}

func relationModelsToModels(rms []RelationModel) []model.MentorshipRelation {
	out := make([]model.MentorshipRelation, 0, len(rms))
	for _, r := range rms {
		out = append(out, relationModelToModel(r))
	}
	return out
}
