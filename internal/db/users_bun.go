// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mentorlink/mentorlink/internal/model"
	"github.com/uptrace/bun"
)

// AddUserBun inserts u and returns it with the assigned ID.
func AddUserBun(ctx context.Context, db bun.IDB, u model.User) (model.User, error) {
	um := &UserModel{
		Name:              u.Name,
		Username:          u.Username,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		AvailableToMentor: u.AvailableToMentor,
		NeedMentoring:     u.NeedMentoring,
		RegisteredAt:      u.RegisteredAt.UTC(),
	}
	if _, err := db.NewInsert().Model(um).Returning("id").Exec(ctx); err != nil {
		return model.User{}, MapDBError(err)
	}
	return userModelToModel(*um), nil
}

// GetUserBun returns the user with id, or nil when absent.
func GetUserBun(ctx context.Context, db bun.IDB, id int) (*model.User, error) {
	return getUserWhere(ctx, db, "id = ?", id)
}

// GetUserByUsernameBun returns the user with username, or nil when absent.
func GetUserByUsernameBun(ctx context.Context, db bun.IDB, username string) (*model.User, error) {
	return getUserWhere(ctx, db, "username = ?", username)
}

func getUserWhere(ctx context.Context, db bun.IDB, where string, arg any) (*model.User, error) {
	var um UserModel
	err := db.NewSelect().Model(&um).Where(where, arg).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u := userModelToModel(um)
	return &u, nil
}

// ListUsersBun returns all users ordered by username.
func ListUsersBun(ctx context.Context, db bun.IDB) ([]model.User, error) {
	var um []UserModel
	if err := db.NewSelect().Model(&um).OrderExpr("username").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.User, 0, len(um))
	for _, u := range um {
		out = append(out, userModelToModel(u))
	}
	return out, nil
}

// UpdateUserAvailabilityBun sets both matching flags. It reports false when
// no such user exists.
func UpdateUserAvailabilityBun(ctx context.Context, db bun.IDB, id int, availableToMentor, needMentoring bool) (bool, error) {
	// MySQL reports zero affected rows for no-op updates, so check first.
	u, err := GetUserBun(ctx, db, id)
	if err != nil || u == nil {
		return false, err
	}
	_, err = ExecRaw(ctx, db, "UPDATE users SET available_to_mentor = ?, need_mentoring = ? WHERE id = ?", availableToMentor, needMentoring, id)
	return err == nil, err
}
