// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
)

// execRawProvider accepts either *bun.DB or bun.Tx.
type execRawProvider interface {
	NewRaw(query string, args ...interface{}) *bun.RawQuery
}

// ExecRaw executes a raw SQL statement using the provided Bun DB or transaction.
func ExecRaw(ctx context.Context, exec execRawProvider, query string, args ...interface{}) (sql.Result, error) {
	return exec.NewRaw(query, args...).Exec(ctx)
}

// QueryRawInto runs a raw query and scans the result into dest.
func QueryRawInto(ctx context.Context, exec execRawProvider, dest interface{}, query string, args ...interface{}) error {
	return exec.NewRaw(query, args...).Scan(ctx, dest)
}

// WithTx runs fn inside a transaction, committing on nil and rolling back
// on error or panic.
func WithTx(ctx context.Context, bdb *bun.DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	return bdb.RunInTx(ctx, nil, fn)
}

// rowsAffected returns how many rows res touched, treating drivers that
// cannot report it as one row.
func rowsAffected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return 1
	}
	return n
}
