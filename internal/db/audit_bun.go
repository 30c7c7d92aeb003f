// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/mentorlink/mentorlink/internal/model"
	"github.com/uptrace/bun"
)

// LogActionBun inserts an audit log entry attributed to userID (0 for the
// system itself).
func LogActionBun(ctx context.Context, db bun.IDB, userID int, action, details string) error {
	am := &AuditLogModel{
		Timestamp: time.Now().UTC().Truncate(time.Second),
		UserID:    userID,
		Action:    action,
		Details:   sql.NullString{String: details, Valid: details != ""},
	}
	_, err := db.NewInsert().Model(am).Returning("id").Exec(ctx)
	return MapDBError(err)
}

// GetAllAuditLogEntriesBun retrieves audit log entries, newest first. A
// positive limit caps the result.
func GetAllAuditLogEntriesBun(ctx context.Context, db bun.IDB, limit int) ([]model.AuditLogEntry, error) {
	var am []AuditLogModel
	q := db.NewSelect().Model(&am).OrderExpr("timestamp DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.AuditLogEntry, 0, len(am))
	for _, a := range am {
		out = append(out, auditLogModelToModel(a))
	}
	return out, nil
}
